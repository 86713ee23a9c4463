package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/treinoapp/pkg"
)

// prints the bcrypt hash to put into TREINO_ADMIN_PASSWORD_HASH
func main() {
	password := flag.String("password", "", "admin password, read from stdin when empty")
	flag.Parse()

	if *password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %s", err)
		}
		*password = strings.TrimSpace(line)
	}
	if *password == "" {
		log.Fatalln("empty password")
	}

	hash, err := pkg.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}
	fmt.Println(hash)
}
