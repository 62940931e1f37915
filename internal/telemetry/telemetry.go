package telemetry

import (
	"sync"
	"time"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/world"
)

// Event kinds.
const (
	KindKill    = "kill"
	KindHit     = "hit"
	KindDamage  = "damage"
	KindExp     = "exp"
	KindLevelUp = "levelup"
	KindDropped = "dropped"
	KindFrame   = "frame"
)

type Event struct {
	Kind string
	I    int
	F    float32
	At   time.Time
}

// Batch is everything observed during one flush interval.
type Batch struct {
	Kills    int
	Hits     int
	Dmg      float32
	Exp      float32
	LevelUps int
	Dropped  int
	Frames   int
	AvgDt    float32
}

func (b Batch) empty() bool {
	return b == Batch{}
}

type Sink struct {
	In   chan Event
	quit chan struct{}
	done chan struct{}

	closeOnce sync.Once

	// last is only touched by the goroutine calling ReportFrame.
	last world.Stats
}

// NewSink starts a sink that logs a summary every two seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(interval time.Duration, flush func(Batch)) *Sink {
	if flush == nil {
		flush = func(Batch) {}
	}
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop(interval, flush)

	return s
}

// Close stops the loop and waits for it to exit. Safe to call more than once.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
	})
}

// ReportFrame emits the change in st since the previous call plus one frame
// event. Sends never block the caller; a full queue drops events.
func (s *Sink) ReportFrame(st world.Stats, dt float32) {
	now := time.Now()
	prev := s.last
	s.last = st

	if n := st.EnemiesKilled - prev.EnemiesKilled; n > 0 {
		s.emit(Event{Kind: KindKill, I: n, At: now})
	}
	if n := st.Hits - prev.Hits; n > 0 {
		s.emit(Event{Kind: KindHit, I: n, At: now})
	}
	if f := st.DamageTaken - prev.DamageTaken; f > 0 {
		s.emit(Event{Kind: KindDamage, F: f, At: now})
	}
	if f := st.ExpCollected - prev.ExpCollected; f > 0 {
		s.emit(Event{Kind: KindExp, F: f, At: now})
	}
	if n := st.LevelUps - prev.LevelUps; n > 0 {
		s.emit(Event{Kind: KindLevelUp, I: n, At: now})
	}
	if n := st.DroppedSpawns - prev.DroppedSpawns; n > 0 {
		s.emit(Event{Kind: KindDropped, I: n, At: now})
	}
	s.emit(Event{Kind: KindFrame, F: dt, At: now})
}

// ResetBaseline forgets the last reported stats, e.g. after the world resets.
func (s *Sink) ResetBaseline() {
	s.last = world.Stats{}
}

func (s *Sink) emit(ev Event) {
	select {
	case s.In <- ev:
	default:
	}
}

func (s *Sink) loop(interval time.Duration, flush func(Batch)) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var b Batch
	var dtSum float32

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case KindKill:
				b.Kills += ev.I
			case KindHit:
				b.Hits += ev.I
			case KindDamage:
				b.Dmg += ev.F
			case KindExp:
				b.Exp += ev.F
			case KindLevelUp:
				b.LevelUps += ev.I
			case KindDropped:
				b.Dropped += ev.I
			case KindFrame:
				b.Frames++
				dtSum += ev.F
			}

		case <-ticker.C:
			if b.Frames > 0 {
				b.AvgDt = dtSum / float32(b.Frames)
			}
			flush(b)
			// reset batch
			b = Batch{}
			dtSum = 0
		}
	}
}

func logBatch(b Batch) {
	if b.empty() {
		return
	}
	logger_config.Logger.Info("telemetry",
		"kills", b.Kills,
		"hits", b.Hits,
		"dmg", b.Dmg,
		"exp", b.Exp,
		"levelups", b.LevelUps,
		"dropped", b.Dropped,
		"frames", b.Frames,
		"avgDt", b.AvgDt,
	)
}
