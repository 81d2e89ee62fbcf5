package explorer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rl-demos/taxi-v3-demo/taxi"
	"github.com/rl-demos/taxi-v3-demo/types"
)

// Runs the main interactive loop
func (e *Explorer) Interact() {
	fmt.Printf("%s", e.header())
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s", e.prompt())

		optionS, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Invalid input! Try again")
			continue
		}
		option, err := strconv.Atoi(strings.Replace(optionS, "\n", "", -1))
		if err != nil {
			fmt.Println("Invalid input! Try again")
			continue
		}
		fmt.Println("------------------------------------")
		switch option {
		case 1:
			fmt.Printf("%s", e.policySummary())
		case 2:
			state, ok := e.readState(reader)
			if !ok {
				continue
			}
			fmt.Printf("%s", e.describeState(state))
		case 3:
			state, ok := e.readState(reader)
			if !ok {
				continue
			}
			fmt.Printf("%s", e.qValues(state))
		case 4:
			e.walkEpisode(reader)
		case 5:
			fmt.Println("Quitting! Thank you")
			return
		default:
			fmt.Println("Wrong choice! Try again!")
		}
	}
}

func (e *Explorer) readState(reader *bufio.Reader) (int, bool) {
	fmt.Printf("Enter the state index (0-%d): ", taxi.NumStates-1)
	stateS, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Invalid input! Try again")
		return 0, false
	}
	state, err := strconv.Atoi(strings.Replace(stateS, "\n", "", -1))
	if err != nil || state < 0 || state >= taxi.NumStates {
		fmt.Println("Invalid input! Not a valid state index. Try again")
		return 0, false
	}
	return state, true
}

// how many states pick each action greedily
func (e *Explorer) policySummary() string {
	counts := make([]int, taxi.NumActions)
	for s := 0; s < taxi.NumStates; s++ {
		counts[e.Table.SelectAction(s)] += 1
	}
	out := "Greedy action distribution over all states:\n"
	for a, count := range counts {
		out += fmt.Sprintf("%-8s: %d\n", taxi.ActionName(a), count)
	}
	return out
}

func (e *Explorer) describeState(state int) string {
	row, col, passenger, destination := taxi.Decode(state)
	out := fmt.Sprintf("State %d:\n", state)
	out += fmt.Sprintf("Taxi at (%d, %d)\n", row, col)
	out += fmt.Sprintf("Passenger: %s\n", taxi.DepotName(passenger))
	out += fmt.Sprintf("Destination: %s\n", taxi.DepotName(destination))
	return out
}

func (e *Explorer) qValues(state int) string {
	out := fmt.Sprintf("Q values for state %d:\n", state)
	greedy := e.Table.SelectAction(state)
	for a, val := range e.Table.Row(state) {
		marker := " "
		if a == greedy {
			marker = "*"
		}
		out += fmt.Sprintf("%s %-8s: %f\n", marker, taxi.ActionName(a), val)
	}
	return out
}

func (e *Explorer) walkPrompt() string {
	return `
---------------------------------------------
Step(s) QValues(d) Run(r) Quit(q): `
}

func (e *Explorer) walkEpisode(reader *bufio.Reader) {
	fmt.Printf("Enter a seed (0 for random): ")
	seedS, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Invalid input! Try again")
		return
	}
	seed, err := strconv.ParseInt(strings.Replace(seedS, "\n", "", -1), 10, 64)
	if err != nil {
		fmt.Println("Invalid input! Not a number. Try again")
		return
	}
	driver := e.newDriver(seed)
	fmt.Println("---------------------------------------------")
	for {
		episode := driver.State()
		fmt.Printf("%s", driver.Render())
		fmt.Printf("Step %d, total reward %.1f, last action %s (%.1f)\n",
			episode.Steps, episode.TotalReward, taxi.ActionName(episode.LastAction), episode.LastReward)
		if episode.Finished() {
			fmt.Println("Episode finished!")
			return
		}
		fmt.Printf("%s", e.walkPrompt())
		optionS, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Invalid input! Try again")
			continue
		}
		fmt.Println("---------------------------------------------")
		option := strings.Replace(optionS, "\n", "", -1)
		switch option {
		case "s":
			if _, err := driver.Step(); errors.Is(err, types.ErrEpisodeFinished) {
				fmt.Println("No more steps!")
			}
		case "d":
			fmt.Printf("%s", e.qValues(episode.State))
		case "r":
			driver.Run(context.Background(), 0, nil)
		case "q":
			return
		default:
			fmt.Println("Invalid option! Try again.")
		}
	}
}

func (e *Explorer) header() string {
	return `
Welcome to the policy table explorer!
	`
}

func (e *Explorer) prompt() string {
	return `
------------------------------------
Select one of the following options:
1. Show greedy action summary
2. Decode a state
3. Show Q values
4. Walk an episode
5. Quit
Enter your choice: `
}
