package store

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// runCmd executes a command and flattens any batches into the messages they
// produce, in order.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// drainList feeds every message a command produces back into the product
// list machine until no effects remain, mirroring the runtime's guarantee
// that results reach the instance that scheduled them.
func drainList(t *testing.T, m ProductListMachine, s ProductListState, cmd tea.Cmd) ProductListState {
	t.Helper()
	queue := runCmd(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		var next tea.Cmd
		s, next = m.Update(s, msg)
		queue = append(queue, runCmd(next)...)
	}
	return s
}

func testEnv() Env {
	return Env{
		FetchProducts: func(ctx context.Context) ([]Product, error) {
			return nil, errors.New("not wired in this test")
		},
		SendOrder: func(ctx context.Context, items []CartItem) (string, error) {
			return "", errors.New("not wired in this test")
		},
		Logger: slog.New(slog.DiscardHandler),
	}
}

func testProduct(id int, name string, price int64) Product {
	return Product{ID: id, Name: name, Price: decimal.NewFromInt(price)}
}
