package store

import (
	"context"
	"testing"
)

func TestTabSelection(t *testing.T) {
	m := NewRootMachine(testEnv())
	s := NewRootState()

	if s.SelectedTab != TabProducts {
		t.Fatalf("default tab=%v, want products", s.SelectedTab)
	}
	s, cmd := m.Update(s, TabSelectedMsg{Tab: TabProfile})
	if cmd != nil {
		t.Fatalf("tab selection must not schedule effects")
	}
	if s.SelectedTab != TabProfile {
		t.Fatalf("SelectedTab=%v, want profile", s.SelectedTab)
	}
}

func TestRootForwardsToProductList(t *testing.T) {
	env := testEnv()
	env.FetchProducts = func(ctx context.Context) ([]Product, error) {
		return []Product{testProduct(1, "ProductA", 10)}, nil
	}
	m := NewRootMachine(env)
	s := NewRootState()

	s, cmd := m.Update(s, ProductListMsg{Msg: FetchProductsMsg{}})
	// The effect's result must come back wrapped for the same child.
	queue := runCmd(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(ProductListMsg); !ok {
			t.Fatalf("child effect result %#v not lifted into the parent union", msg)
		}
		next, cmd := m.Update(s, msg)
		s = next
		queue = append(queue, runCmd(cmd)...)
	}
	if s.ProductList.Rows.Len() != 1 {
		t.Fatalf("fetch through the root did not reach the product list")
	}
}

func TestRootForwardsToProfile(t *testing.T) {
	m := NewRootMachine(testEnv())
	s := NewRootState()

	s, _ = m.Update(s, ProfileMsg{Msg: ProfileLoadedMsg{FullName: "Ada Lovelace", Email: "ada@example.com"}})
	if s.Profile.FullName != "Ada Lovelace" {
		t.Fatalf("profile message was not forwarded")
	}
}
