package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	colorBackground = color.White
	colorHUD        = color.RGBA{90, 90, 90, 255}
)

// Game owns the players and the bullets and implements ebiten.Game
type Game struct {
	config    Config
	logger    *log.Logger
	input     InputSource
	retention RetentionPolicy
	clock     func() time.Time
	debug     DebugState

	players []Player
	bullets *BulletSet

	// Bullets dropped by the retention policy since start
	dropped int

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// FPS drop detection
	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// Option customises a Game at construction
type Option func(*Game)

// WithInput replaces the keyboard/mouse input source
func WithInput(in InputSource) Option {
	return func(g *Game) { g.input = in }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClock replaces time.Now for delta time measurement
func WithClock(clock func() time.Time) Option {
	return func(g *Game) { g.clock = clock }
}

// WithRetention overrides the retention policy built from the config
func WithRetention(p RetentionPolicy) Option {
	return func(g *Game) { g.retention = p }
}

// NewGame creates a new game instance
func NewGame(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		config:          config,
		logger:          log.Default(),
		clock:           time.Now,
		debug:           DebugState{ShowPlayerInfo: config.ShowDebug, ShowHUD: true},
		fps:             60.0,
		fpsDropCooldown: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.input == nil {
		g.input = NewKeyboardInput()
	}
	if g.retention == nil {
		policy, err := NewRetentionPolicy(config.Retention)
		if err != nil {
			return nil, err
		}
		g.retention = policy
	}
	if dir := config.Diagnostics.ProfileDir; dir != "" {
		profiler, err := NewProfiler(dir, g.logger)
		if err != nil {
			return nil, err
		}
		g.profiler = profiler
	}

	g.bullets = NewBulletSet(g.onBulletRemoved)
	g.createPlayers()

	now := g.clock()
	g.gameStartTime = now
	g.lastUpdateTime = now

	return g, nil
}

// createPlayers spawns the first player at the screen center and clones the rest to its right
func (g *Game) createPlayers() {
	center := mgl64.Vec2{float64(g.config.ScreenWidth) * 0.5, float64(g.config.ScreenHeight) * 0.5}
	first := NewPlayer(center, g.config.PlayerSpeed, g.config.PlayerHP, g.config.BulletSpeed)

	g.players = make([]Player, 0, g.config.Players)
	g.players = append(g.players, first)
	for i := 1; i < g.config.Players; i++ {
		p := first.Clone()
		p.Position[0] += g.config.PlayerSpacing * float64(i)
		g.players = append(g.players, p)
	}

	for _, p := range g.players {
		g.logger.Debug("player spawned", "id", p.ID, "x", p.Position.X(), "y", p.Position.Y())
	}
}

func (g *Game) onBulletRemoved(b Bullet) {
	g.dropped++
	g.logger.Debug("bullet dropped", "x", b.Position.X(), "y", b.Position.Y())
}

// view is the context handed to the retention policy
func (g *Game) view() View {
	v := View{
		Width:  float64(g.config.ScreenWidth),
		Height: float64(g.config.ScreenHeight),
	}
	if len(g.players) > 0 {
		v.Reference = g.players[0].Position
	}
	return v
}

// Step advances the simulation by dt seconds with the given input
func (g *Game) Step(in Input, dt float64) {
	if in.ToggleDebug {
		g.debug.Toggle()
	}

	for i := range g.players {
		if b, ok := g.players[i].Update(in, dt); ok {
			g.bullets.Add(b)
		}
	}

	g.bullets.Advance(dt)
	g.bullets.Prune(g.retention, g.view())
}

// Render draws the current state onto s
func (g *Game) Render(s Surface) {
	s.Clear(colorBackground)

	for _, b := range g.bullets.All() {
		b.Draw(s)
	}

	for i := range g.players {
		g.players[i].Draw(s)
		if g.debug.ShowPlayerInfo {
			g.players[i].DrawDebug(s)
		}
	}

	if g.debug.ShowHUD {
		hud := fmt.Sprintf("FPS: %.0f  bullets: %d  dropped: %d", g.fps, g.bullets.Len(), g.dropped)
		s.DrawText(hud, 8, 8, hudTextSize, colorHUD)
	}
}

// Update updates the game state
func (g *Game) Update() error {
	now := g.clock()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > g.config.MaxFrameTime {
		deltaTime = g.config.MaxFrameTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	g.trackFPS(deltaTime, now)
	g.Step(g.input.Poll(), deltaTime)
	return nil
}

// trackFPS updates the FPS estimate every half second and reports drops
func (g *Game) trackFPS(deltaTime float64, now time.Time) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0.0

	threshold := g.config.Diagnostics.FPSWarnThreshold
	if threshold <= 0 || g.fps >= threshold {
		return
	}
	// Skip the first 3 seconds after launch
	if now.Sub(g.gameStartTime) < 3*time.Second || now.Sub(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = now

	g.logger.Warn("fps drop detected", "fps", fmt.Sprintf("%.0f", g.fps), "bullets", g.bullets.Len())
	if g.profiler == nil {
		return
	}
	reason := fmt.Sprintf("fps%.0f-bullets%d", g.fps, g.bullets.Len())
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.logger.Warn("profile capture skipped", "err", err)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.Render(NewScreenSurface(screen))
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Players returns a copy of the players
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	copy(out, g.players)
	return out
}

// Bullets returns a copy of the active bullets
func (g *Game) Bullets() []Bullet {
	all := g.bullets.All()
	out := make([]Bullet, len(all))
	copy(out, all)
	return out
}

// Dropped returns how many bullets the retention policy has removed
func (g *Game) Dropped() int {
	return g.dropped
}

// FPS returns the last measured frame rate
func (g *Game) FPS() float64 {
	return g.fps
}

// ShowPlayerInfo reports whether the per-player debug text is on
func (g *Game) ShowPlayerInfo() bool {
	return g.debug.ShowPlayerInfo
}
