package persona

import (
	"os"
	"sync"
	"testing"
	"time"
)

func TestWatchTeamReloadsOnWrite(t *testing.T) {
	path := writeTeamFile(t, `
personas:
  - id: ceo
    name: Alex Chen
    role: Chief Executive Officer
`)

	changed := make(chan []Definition, 1)
	tw, err := WatchTeam(path, func(defs []Definition) {
		select {
		case changed <- defs:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("WatchTeam: %v", err)
	}
	defer tw.Close()

	updated := `
personas:
  - id: ceo
    name: Alex Chen
    role: Chief Executive Officer
  - id: developer
    name: Sarah Kim
    role: Lead Developer
`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("rewrite team file: %v", err)
	}

	select {
	case defs := <-changed:
		if len(defs) != 2 {
			t.Errorf("reload produced %d personas, want 2", len(defs))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reload observed after file write")
	}
}

func TestWatchTeamBadFileReportsErrorKeepsWatching(t *testing.T) {
	path := writeTeamFile(t, `
personas:
  - id: ceo
    name: Alex Chen
    role: Chief Executive Officer
`)

	errs := make(chan error, 1)
	tw, err := WatchTeam(path, func([]Definition) {}, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchTeam: %v", err)
	}
	defer tw.Close()

	if err := os.WriteFile(path, []byte("personas: [not: valid"), 0644); err != nil {
		t.Fatalf("rewrite team file: %v", err)
	}

	select {
	case <-errs:
	case <-time.After(2 * time.Second):
		t.Fatal("parse failure was not reported")
	}
}

func TestWatchTeamCloseConcurrent(t *testing.T) {
	path := writeTeamFile(t, `
personas:
  - id: ceo
    name: Alex Chen
    role: Chief Executive Officer
`)

	tw, err := WatchTeam(path, func([]Definition) {}, nil)
	if err != nil {
		t.Fatalf("WatchTeam: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tw.Close()
		}()
	}
	wg.Wait()

	if err := tw.Close(); err != nil {
		t.Errorf("Close after close: %v", err)
	}
}
