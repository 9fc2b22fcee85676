// passhash prints the bcrypt hash expected in TRAINERDESK_ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/pkg"
)

func main() {
	password := flag.String("password", "", "password to hash, read from stdin when empty")
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
	if !pkg.CheckPasswordHash(*password, hash) {
		log.Fatalln("generated hash does not match")
	}

	fmt.Println(hash)
}
