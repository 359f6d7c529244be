// Command aoc2024 runs one day's solver against an input file and prints both
// answers, optionally drawing the day's grid with its highlighted cells.
//
// Usage:
//
//	aoc2024 -day 16 -input days/day16/testdata/sample.txt -show
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"

	"github.com/jfkriz/AdventOfCode-2024/days"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("aoc2024: ")

	day := flag.Int("day", 0, "puzzle day to run")
	path := flag.String("input", "", "input file (default days/dayNN/testdata/input.txt)")
	show := flag.Bool("show", false, "draw the day's grid with highlighted cells")
	plain := flag.Bool("no-color", false, "disable colored output")
	list := flag.Bool("list", false, "list the available days")
	flag.Parse()

	if *plain {
		color.Enable = false
	}
	if *list {
		for _, p := range days.All() {
			fmt.Printf("%2d  %s\n", p.Day, p.Title)
		}
		return
	}

	p, err := days.Lookup(*day)
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}
	if *path == "" {
		*path = fmt.Sprintf("days/day%02d/testdata/input.txt", p.Day)
	}
	lines, err := input.ReadLines(*path)
	if err != nil {
		log.Fatalf("reading %s: %v", *path, err)
	}

	ans, err := p.Solve(lines)
	if err != nil {
		log.Fatalf("day %d: %v", p.Day, err)
	}
	fmt.Println(heading.Sprint(fmt.Sprintf("Day %d: %s", p.Day, p.Title)))
	fmt.Println("Part one:", answer.Sprint(ans.PartOne))
	fmt.Println("Part two:", answer.Sprint(ans.PartTwo))

	if !*show {
		return
	}
	if p.Picture == nil {
		log.Printf("day %d has no picture", p.Day)
		os.Exit(1)
	}
	g, marks, err := p.Picture(lines)
	if err != nil {
		log.Fatalf("day %d picture: %v", p.Day, err)
	}
	fmt.Println(render(g, marks))
}
