package main // import "github.com/tonobo/nomadsnake"

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	APIVersion = "1"
	Author     = "nomad"
	Color      = "#F09383"
	HeadIcon   = "default"
	TailIcon   = "default"
	Version    = ""

	FallbackDirection = Up
	FoodHealthLimit   = 50
	HazardWeight      = 5
	EnemyHeadPenalty  = 10
)

type Request struct {
	Game  *Game  `json:"game"`
	Turn  int    `json:"turn"`
	Board *Board `json:"board"`
	You   *Snake `json:"you"`
}

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map"`
	Timeout int     `json:"timeout"`
	Source  string  `json:"source"`
}

type Ruleset struct {
	Name     string          `json:"name"`
	Version  string          `json:"version"`
	Settings RulesetSettings `json:"settings"`
}

type RulesetSettings struct {
	FoodSpawnChance     int `json:"foodSpawnChance"`
	MinimumFood         int `json:"minimumFood"`
	HazardDamagePerTurn int `json:"hazardDamagePerTurn"`
}

type MoveResponse struct {
	Move  Direction `json:"move"`
	Shout string    `json:"shout,omitempty"`
}

// Validate rejects requests the decider must never see.
func (r *Request) Validate() error {
	switch {
	case r.Game == nil:
		return fmt.Errorf("missing game")
	case r.Board == nil:
		return fmt.Errorf("missing board")
	case r.You == nil:
		return fmt.Errorf("missing you")
	case r.Board.Width <= 0 || r.Board.Height <= 0:
		return fmt.Errorf("invalid board size %dx%d", r.Board.Width, r.Board.Height)
	case len(r.You.Body) < 2:
		return fmt.Errorf("snake %s has %d body segments, need at least 2", r.You.ID, len(r.You.Body))
	}
	for _, s := range r.Board.Snakes {
		if s == nil || len(s.Body) == 0 {
			return fmt.Errorf("snake without body on board")
		}
	}
	return nil
}

func (r *Request) Init() {
	if r.You != nil {
		r.You.Init()
	}
	if r.Board == nil {
		return
	}
	for _, snake := range r.Board.Snakes {
		if snake != nil {
			snake.Init()
		}
	}
}

func bind(c *gin.Context) (*Request, bool) {
	var j Request
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if err := j.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	j.Init()
	return &j, true
}

func accessLog(j *Request) {
	w := AccessLog(j.Game, j.You)
	defer w.Close()
	body, _ := json.Marshal(j)
	fmt.Fprintf(w, "%s\n", body)
}

func NewRouter(d *Decider) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, Info())
	})

	r.POST("/start", func(c *gin.Context) {
		j, ok := bind(c)
		if !ok {
			return
		}
		Start(j.Game, j.Turn, j.Board, j.You)
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/end", func(c *gin.Context) {
		j, ok := bind(c)
		if !ok {
			return
		}
		accessLog(j)
		End(j.Game, j.Turn, j.Board, j.You)
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/move", func(c *gin.Context) {
		j, ok := bind(c)
		if !ok {
			return
		}
		accessLog(j)
		dec := d.Evaluate(j.Game, j.Turn, j.Board, j.You)
		resp := MoveResponse{Move: dec.Direction}
		if dec.Cornered {
			resp.Shout = "cornered"
		}
		c.JSON(http.StatusOK, resp)
	})

	return r
}

var (
	move     = flag.Bool("move", false, "Decide one move for a request read from stdin")
	strategy = flag.String("strategy", "baseline", "Move strategy: baseline or smart")
)

func main() {
	flag.StringVar(&LogDir, "log-dir", "", "Directory for per-game logs (stdout if empty)")
	flag.BoolVar(&Debug, "debug", false, "Dump the board after every move")
	fallback := flag.String("fallback", string(FallbackDirection), "Move to make when no move is safe")
	flag.Parse()

	dir, err := ParseDirection(*fallback)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	FallbackDirection = dir

	d, err := NewDecider(*strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *move {
		var j Request
		if err := json.NewDecoder(os.Stdin).Decode(&j); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := j.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		j.Init()
		Debug = true
		fmt.Println(d.Decide(j.Game, j.Turn, j.Board, j.You))
		return
	}

	// Listens on $PORT, 8080 by default.
	if err := NewRouter(d).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
