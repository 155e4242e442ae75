package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"elevator-sequence-service/internal/domain"
	"elevator-sequence-service/internal/services"
)

// elevcli optimizes a multi-passenger elevator scenario from the
// command line:
//
//	elevcli -start 5 2:1 10:6 15:19
//
// Each argument is one passenger as pickup:drop[:name]. Without
// arguments the tool prompts interactively.
func main() {
	start := flag.Int("start", 0, "elevator start floor")
	tries := flag.Int("tries", 200, "randomized pickup orders to evaluate for large scenarios")
	seed := flag.Int64("seed", 1, "seed for the randomized heuristics")
	flag.Parse()

	startSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "start" {
			startSet = true
		}
	})

	var (
		startFloor int
		passengers []domain.Passenger
		err        error
	)
	if !startSet || flag.NArg() == 0 {
		startFloor, passengers, err = readScenario(os.Stdin)
	} else {
		startFloor = *start
		passengers, err = parsePassengerArgs(flag.Args())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	kept := make([]domain.Passenger, 0, len(passengers))
	for _, p := range passengers {
		if p.Pickup == p.Drop {
			fmt.Printf("Warning: passenger %s pickup equals drop (%d); ignoring passenger\n", p.Label(), p.Pickup)
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		fmt.Println("No valid passengers to serve.")
		return
	}

	fmt.Println("\nScenario:")
	fmt.Printf("  Elevator at floor %d\n", startFloor)
	for _, p := range kept {
		fmt.Printf("  %s: pickup %d -> drop %d\n", p.Label(), p.Pickup, p.Drop)
	}

	rng := rand.New(rand.NewSource(*seed))
	best := services.FindBestSequences(startFloor, kept, *tries, rng)

	fmt.Println("\nBest sequences for each objective:")
	for _, obj := range domain.Objectives() {
		cand := best[obj]
		if cand == nil {
			fmt.Printf("  %s: no candidate found\n", obj)
			continue
		}

		title := strings.ToUpper(strings.ReplaceAll(string(obj), "_", " "))
		fmt.Printf("\n== %s ==\n", title)
		fmt.Println("Sequence:")
		fmt.Println("  " + services.FormatSequence(startFloor, cand.Sequence, kept))
		fmt.Printf("Total travel: %d\n", cand.Metrics.TotalTravel)
		fmt.Printf("Avg pickup wait: %.2f, Max pickup wait: %d\n",
			cand.Metrics.AvgPickupWait, cand.Metrics.MaxPickupWait)
		fmt.Printf("Avg arrival time: %.2f, Max arrival time: %d\n",
			cand.Metrics.AvgArrivalTime, cand.Metrics.MaxArrivalTime)
	}

	fmt.Println("\nDone.")
}

// parsePassengerArgs turns pickup:drop[:name] tokens into passengers
// with ids assigned by position.
func parsePassengerArgs(args []string) ([]domain.Passenger, error) {
	passengers := make([]domain.Passenger, 0, len(args))
	for i, token := range args {
		parts := strings.SplitN(token, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("passenger token must be pickup:drop (e.g. 2:1), got %q", token)
		}

		pickup, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("parse pickup floor in %q: %w", token, err)
		}
		drop, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("parse drop floor in %q: %w", token, err)
		}

		name := fmt.Sprintf("P%d", i+1)
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			name = strings.TrimSpace(parts[2])
		}

		passengers = append(passengers, domain.Passenger{
			ID:     i + 1,
			Pickup: pickup,
			Drop:   drop,
			Name:   name,
		})
	}
	return passengers, nil
}

// readScenario prompts for the start floor and passenger list.
func readScenario(in *os.File) (int, []domain.Passenger, error) {
	fmt.Println("Interactive mode — enter elevator start and passengers")
	scanner := bufio.NewScanner(in)

	start, err := readInt(scanner, "Elevator start floor: ")
	if err != nil {
		return 0, nil, err
	}

	n, err := readInt(scanner, "Number of passengers: ")
	if err != nil {
		return 0, nil, err
	}
	if n < 0 {
		return 0, nil, fmt.Errorf("number of passengers must be zero or positive, got %d", n)
	}

	passengers := make([]domain.Passenger, 0, n)
	for i := 0; i < n; i++ {
		pickup, err := readInt(scanner, fmt.Sprintf("Passenger %d pickup floor: ", i+1))
		if err != nil {
			return 0, nil, err
		}
		drop, err := readInt(scanner, fmt.Sprintf("Passenger %d drop floor: ", i+1))
		if err != nil {
			return 0, nil, err
		}

		fmt.Printf("Passenger %d name (optional): ", i+1)
		name := ""
		if scanner.Scan() {
			name = strings.TrimSpace(scanner.Text())
		}
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}

		passengers = append(passengers, domain.Passenger{
			ID:     i + 1,
			Pickup: pickup,
			Drop:   drop,
			Name:   name,
		})
	}

	return start, passengers, nil
}

func readInt(scanner *bufio.Scanner, prompt string) (int, error) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("unexpected end of input")
	}

	val, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("please enter a whole number, got %q", strings.TrimSpace(scanner.Text()))
	}
	return val, nil
}
