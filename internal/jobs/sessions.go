package jobs

import (
	"context"
	"math/rand"
	"sync"

	"survivors-lab/internal/shared/input"
	"survivors-lab/internal/world"
)

// SessionRequest describes one headless run.
type SessionRequest struct {
	ID    int
	Seed  int64
	Ticks int
	Dt    float32
	Cfg   world.Config
}

// Summary is the end state of a headless run.
type Summary struct {
	ID      int
	Seed    int64
	Ticks   int
	Elapsed float32

	Level   int
	HP      float32
	Enemies int // still alive
	Stats   world.Stats
}

// SessionPool runs independent single-threaded sessions on a fixed set of
// workers. Sessions share nothing.
type SessionPool struct {
	Req  chan SessionRequest
	Res  chan Summary
	quit chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewSessionPool(workerCount, queueSize int) *SessionPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &SessionPool{
		Req:  make(chan SessionRequest, queueSize),
		Res:  make(chan Summary, queueSize),
		quit: make(chan struct{}),
	}

	p.wg.Add(workerCount)
	for range workerCount {
		go p.worker()
	}

	return p
}

func (p *SessionPool) Close() {
	p.closeOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}

func (p *SessionPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return

		case req := <-p.Req:
			res := RunSession(req)

			// results are awaited by the caller; only shutdown may drop one
			select {
			case <-p.quit:
				return
			case p.Res <- res:
			}
		}
	}
}

// RunAll submits every request and collects one Summary per request, in
// completion order. It stops early when ctx is done.
func (p *SessionPool) RunAll(ctx context.Context, reqs []SessionRequest) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	go func() {
		for _, r := range reqs {
			select {
			case <-ctx.Done():
				return
			case <-p.quit:
				return
			case p.Req <- r:
			}
		}
	}()

	out := make([]Summary, 0, len(reqs))
	for len(out) < len(reqs) {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case s := <-p.Res:
			out = append(out, s)
		}
	}
	return out, nil
}

// wanderEvery is how many ticks the wander pattern holds one direction.
const wanderEvery = 30

// RunSession steps a fresh world for req.Ticks ticks under a seeded wander
// input. Equal requests give equal summaries.
func RunSession(req SessionRequest) Summary {
	dt := req.Dt
	if dt <= 0 {
		dt = 1.0 / 60.0
	}

	w := world.NewWorld(req.Cfg)
	rng := rand.New(rand.NewSource(req.Seed))

	var in input.State
	for tick := range req.Ticks {
		if tick%wanderEvery == 0 {
			in = wander(rng)
		}
		w.Step(dt, in)
	}

	enemies, _, _, _ := w.Alive()
	return Summary{
		ID:      req.ID,
		Seed:    req.Seed,
		Ticks:   req.Ticks,
		Elapsed: w.Elapsed,
		Level:   w.Player.Level,
		HP:      w.Player.HP,
		Enemies: enemies,
		Stats:   w.Stats,
	}
}

// wander picks one of the eight directions or standing still.
func wander(rng *rand.Rand) input.State {
	dx := rng.Intn(3) - 1
	dy := rng.Intn(3) - 1
	return input.State{
		Left:  dx < 0,
		Right: dx > 0,
		Down:  dy < 0,
		Up:    dy > 0,
	}
}
