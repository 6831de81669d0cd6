package main

import (
	"log"

	"github.com/darkautism/verygif"
)

func main() {
	out, err := verygif.MakeGIF("idle.png", ".", verygif.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", out)
}
