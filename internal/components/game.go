package components

import "sync"

const (
	heartCount = 10
	// ConfettiPieces is the size of the one-shot celebration burst.
	ConfettiPieces = 80
)

// GamePhase is the phase of a Game machine.
type GamePhase int

const (
	GameIdle GamePhase = iota
	GamePlaying
	GameCompleted
)

func (p GamePhase) String() string {
	switch p {
	case GamePlaying:
		return "playing"
	case GameCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Game is a collect-all-targets mini game. Each target moves from present
// to collected at most once; collecting the last one completes the game and
// fires the celebration exactly once.
type Game struct {
	mu         sync.Mutex
	phase      GamePhase
	editable   bool
	collected  []bool
	remaining  int
	onComplete func()
}

// NewGame returns an idle game with n targets. onComplete may be nil.
func NewGame(n int, editable bool, onComplete func()) *Game {
	if n < 1 {
		n = 1
	}
	return &Game{
		editable:   editable,
		collected:  make([]bool, n),
		remaining:  n,
		onComplete: onComplete,
	}
}

// Start moves an idle game to playing.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase == GameIdle {
		g.phase = GamePlaying
	}
}

// Collect marks target id as collected and reports whether the call changed
// anything. It is a no-op in editable mode, before Start, after completion,
// for out-of-range ids and for targets already collected.
func (g *Game) Collect(id int) bool {
	g.mu.Lock()
	if g.editable || g.phase != GamePlaying || id < 0 || id >= len(g.collected) || g.collected[id] {
		g.mu.Unlock()
		return false
	}
	g.collected[id] = true
	g.remaining--
	var celebrate func()
	if g.remaining == 0 {
		g.phase = GameCompleted
		celebrate = g.onComplete
	}
	g.mu.Unlock()

	if celebrate != nil {
		celebrate()
	}
	return true
}

// Reset returns the game to idle with every target present.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.collected {
		g.collected[i] = false
	}
	g.remaining = len(g.collected)
	g.phase = GameIdle
}

// Phase returns the current phase.
func (g *Game) Phase() GamePhase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Remaining returns how many targets are still present.
func (g *Game) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining
}

// Targets returns the total number of targets.
func (g *Game) Targets() int { return len(g.collected) }

func (g *Game) Kind() BehaviorKind { return GameBehavior }
func (g *Game) State() string      { return g.Phase().String() }
func (g *Game) Stop()              {}
