package main

import (
	"flag"
	"fmt"
	"log"

	"treetop/internal/app"
	"treetop/internal/forest"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindForest(flag.CommandLine)
	flag.Parse()

	heights, err := cfg.Heights()
	if err != nil {
		log.Fatal(err)
	}

	trees := forest.FromHeights(heights)
	fmt.Println("Day 08")
	fmt.Printf("Part 01, Visible trees %d\n", forest.CountVisible(trees))
	fmt.Printf("Part 02, Best scenic score %d\n", forest.BestScenicScore(trees))
}
