// Prints the bcrypt hash of a password for OWNER_PASSWORD_HASH.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/limbo/youthlife/internal/service"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpass <password>")
	}
	hash, err := service.Hash(os.Args[1])
	if err != nil {
		log.Fatal("hashing password error: " + err.Error())
	}
	fmt.Println(hash)
}
