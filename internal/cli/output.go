package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case GameCount:
		o.printGameCount(v)
	case PlayerList:
		o.printPlayerList(v)
	case Handles:
		o.printHandles(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerRecord response type (matches API)
type PlayerRecord struct {
	Account  string    `json:"account"`
	Decision string    `json:"decision"`
	JoinedAt time.Time `json:"joined_at"`
}

// PlayerRolls response type
type PlayerRolls struct {
	Account string `json:"account"`
	Rolls   []int  `json:"rolls"`
	Score   int    `json:"score"`
}

// Game response type
type Game struct {
	ID        uint64         `json:"id"`
	Creator   string         `json:"creator"`
	Capacity  int            `json:"capacity"`
	State     string         `json:"state"`
	Pot       uint64         `json:"pot"`
	Players   []PlayerRecord `json:"players"`
	Winner    string         `json:"winner,omitempty"`
	Seed      string         `json:"seed,omitempty"`
	Rolls     []PlayerRolls  `json:"rolls,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// GameList response type
type GameList struct {
	Games []Game `json:"games"`
}

// GameCount response type
type GameCount struct {
	Count uint64 `json:"count"`
}

// PlayerList is a bare list of player records
type PlayerList []PlayerRecord

// Handles response type
type Handles struct {
	Account string   `json:"account"`
	Handles []string `json:"handles"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %d\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Creator: %s\n", g.Creator)
	fmt.Printf("Pot: %d wei\n", g.Pot)
	fmt.Printf("Seats: %d/%d\n", len(g.Players), g.Capacity)

	if len(g.Players) > 0 {
		fmt.Println("Players:")
		for _, p := range g.Players {
			fmt.Printf("  - %s (%s)\n", p.Account, p.Decision)
		}
	}

	if g.Winner != "" {
		fmt.Printf("Winner: %s\n", g.Winner)
	}
	if g.Seed != "" {
		fmt.Printf("Seed: %s\n", g.Seed)
	}
	if len(g.Rolls) > 0 {
		fmt.Println("Rolls:")
		for _, r := range g.Rolls {
			fmt.Printf("  %s: %v (score %d)\n", r.Account, r.Rolls, r.Score)
		}
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		winner := ""
		if g.Winner != "" {
			winner = fmt.Sprintf(" winner=%s", g.Winner)
		}
		fmt.Printf("  %d: %s seats=%d/%d pot=%d%s\n",
			g.ID, g.State, len(g.Players), g.Capacity, g.Pot, winner)
	}
}

func (o *Output) printGameCount(c GameCount) {
	fmt.Printf("Total games: %d\n", c.Count)
}

func (o *Output) printPlayerList(l PlayerList) {
	if len(l) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Printf("Players (%d):\n", len(l))
	for _, p := range l {
		fmt.Printf("  - %s (%s)\n", p.Account, p.Decision)
	}
}

func (o *Output) printHandles(h Handles) {
	fmt.Printf("Account: %s\n", h.Account)
	fmt.Println("Handles:")
	for i, handle := range h.Handles {
		fmt.Printf("  %d: %s\n", i, handle)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
