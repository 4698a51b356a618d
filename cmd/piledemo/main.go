package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pile-lite/card"
	"pile-lite/pile"
	"pile-lite/rng"
	"pile-lite/wire"
)

type handView struct {
	Seat   int            `json:"seat"`
	Cards  []card.Card    `json:"cards"`
	High   *card.Card     `json:"high,omitempty"`
	Suits  map[string]int `json:"suits"`
	Sorted []card.Card    `json:"sorted"`
}

type dealResult struct {
	Seed      int64          `json:"seed"`
	Mode      string         `json:"mode"`
	Hands     []handView     `json:"hands"`
	Stock     *wire.WirePile `json:"stock"`
	StockSize int            `json:"stock_wire_bytes"`
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	seed := flag.Int64("seed", int64(atoiDef(os.Getenv("PILE_SEED"), 0)), "shuffle seed (0 => time-based)")
	mode := flag.String("shuffle", getenv("PILE_SHUFFLE", pile.FisherYates.String()), "shuffle algorithm: fisher-yates | full-range-swap")
	hands := flag.Int("hands", atoiDef(os.Getenv("PILE_HANDS"), 4), "number of hands to deal")
	size := flag.Int("cards", 5, "cards per hand")
	asJSON := flag.Bool("json", false, "print the deal as JSON")
	flag.Parse()

	shuffle, err := pile.ParseShuffleMode(*mode)
	if err != nil {
		log.Fatalf("[PileDemo] %v", err)
	}
	res, err := deal(pile.Config{Shuffle: shuffle, Seed: *seed}, *hands, *size)
	if err != nil {
		log.Fatalf("[PileDemo] Deal failed: %v", err)
	}
	log.Printf("[PileDemo] Dealt %d hands of %d (%s, seed=%d), %d cards left in stock", *hands, *size, shuffle, res.Seed, len(res.Stock.Cards))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatalf("[PileDemo] Encode failed: %v", err)
		}
		return
	}
	for _, h := range res.Hands {
		high := "-"
		if h.High != nil {
			high = h.High.String()
		}
		fmt.Printf("seat %d: %v high=%s sorted=%v\n", h.Seat, h.Cards, high, h.Sorted)
	}
	fmt.Printf("stock: %d cards, %d bytes encoded\n", len(res.Stock.Cards), res.StockSize)
}

// deal shuffles a fresh deck and deals round-robin, one card per hand per pass.
// Without a caller Source, the deck and every seat share one ChaCha stream and
// the seed it was keyed with is reported, so a time-seeded deal can be replayed.
func deal(cfg pile.Config, hands, size int) (*dealResult, error) {
	if hands <= 0 || size <= 0 {
		return nil, fmt.Errorf("hands and cards must be > 0 (hands=%d cards=%d)", hands, size)
	}
	if hands*size > 52 {
		return nil, fmt.Errorf("cannot deal %d hands of %d from 52 cards", hands, size)
	}

	var seed int64
	if cfg.Source == nil {
		seed = cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		src := rng.NewSource(seed)
		cfg.Source = rand.New(src)
		seed = src.SeedValue()
	}

	deck, err := pile.NewDeck(cfg)
	if err != nil {
		return nil, err
	}
	deck.Shuffle()

	seats := make([]*pile.Pile, hands)
	for i := range seats {
		if seats[i], err = pile.NewWithConfig(cfg); err != nil {
			return nil, err
		}
	}
	for round := 0; round < size; round++ {
		for _, seat := range seats {
			c, err := deck.Pop()
			if err != nil {
				return nil, err
			}
			if err := seat.Add(c); err != nil {
				return nil, err
			}
		}
	}

	res := &dealResult{Seed: seed, Mode: cfg.Shuffle.String()}
	for i, seat := range seats {
		view := handView{
			Seat:   i,
			Cards:  seat.Cards(),
			Suits:  make(map[string]int, len(card.Suits)),
			Sorted: seat.Sorted(),
		}
		if high, ok := seat.High(); ok {
			view.High = &high
		}
		for _, s := range card.Suits {
			view.Suits[s.Name()] = seat.SuitCount(s)
		}
		res.Hands = append(res.Hands, view)
	}
	res.Stock = wire.ToWirePile(deck.Snapshot())
	res.StockSize = len(wire.Encode(deck))
	return res, nil
}
