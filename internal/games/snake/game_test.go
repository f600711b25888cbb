package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame() *Game {
	return New(10, 10, WithSeed(42))
}

func assertHead(t *testing.T, g *Game, x, y int) {
	t.Helper()
	if hx, hy := g.Snake().HeadPosition(); hx != x || hy != y {
		t.Fatalf("Head at (%d, %d), expected (%d, %d)", hx, hy, x, y)
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame()

	if g.Width() != 10 || g.Height() != 10 {
		t.Errorf("Arena = %dx%d, expected 10x10", g.Width(), g.Height())
	}
	assertHead(t, g, 2, 2)
	if g.Snake().Len() != 3 {
		t.Errorf("Snake length = %d, expected 3", g.Snake().Len())
	}
	if g.Snake().HeadDirection() != DirRight {
		t.Errorf("Heading = %v, expected Right", g.Snake().HeadDirection())
	}
	if food, ok := g.Food(); !ok || food != core.Pt(6, 4) {
		t.Errorf("Food = %+v (exists %v), expected (6, 4)", food, ok)
	}
	if g.GameOver() {
		t.Error("Game should not start in game over state")
	}
	if g.WaitingTime() != 0 {
		t.Errorf("WaitingTime = %f, expected 0", g.WaitingTime())
	}
}

func TestTimerForcesMove(t *testing.T) {
	g := newTestGame()

	g.Update(0.1)

	assertHead(t, g, 3, 2)
	if g.WaitingTime() != 0 {
		t.Errorf("WaitingTime = %f, expected reset to 0", g.WaitingTime())
	}
}

func TestTimerAccumulates(t *testing.T) {
	g := newTestGame()

	g.Update(0.05)
	assertHead(t, g, 2, 2)
	if g.WaitingTime() != 0.05 {
		t.Errorf("WaitingTime = %f, expected 0.05", g.WaitingTime())
	}

	g.Update(0.05)
	assertHead(t, g, 3, 2)
}

func TestTimerWithCustomPeriod(t *testing.T) {
	g := New(10, 10, WithSeed(1), WithTiming(0.5, 2))

	g.Update(0.4)
	assertHead(t, g, 2, 2)
	g.Update(0.1)
	assertHead(t, g, 3, 2)
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame()

	g.Update(0.03)
	g.KeyPressed(core.KeyLeft)

	assertHead(t, g, 2, 2)
	if g.Snake().HeadDirection() != DirRight {
		t.Errorf("Heading = %v, expected Right", g.Snake().HeadDirection())
	}
	// A rejected key does not touch the timer
	if g.WaitingTime() != 0.03 {
		t.Errorf("WaitingTime = %f, expected 0.03", g.WaitingTime())
	}

	// The next timer-driven update still moves the snake
	g.Update(0.07)
	assertHead(t, g, 3, 2)
}

func TestDirectionalKeyMovesImmediately(t *testing.T) {
	g := newTestGame()

	g.Update(0.05)
	g.KeyPressed(core.KeyDown)

	assertHead(t, g, 2, 3)
	if g.Snake().HeadDirection() != DirDown {
		t.Errorf("Heading = %v, expected Down", g.Snake().HeadDirection())
	}
	if g.WaitingTime() != 0 {
		t.Errorf("WaitingTime = %f, expected reset to 0", g.WaitingTime())
	}
}

func TestOtherKeyStepsForward(t *testing.T) {
	g := newTestGame()

	g.KeyPressed(core.KeyOther)

	assertHead(t, g, 3, 2)
	if g.Snake().HeadDirection() != DirRight {
		t.Errorf("Heading = %v, expected Right", g.Snake().HeadDirection())
	}
}

func TestEatingGrowsOnNextMove(t *testing.T) {
	g := newTestGame()

	g.KeyPressed(core.KeyDown)
	g.KeyPressed(core.KeyDown)
	assertHead(t, g, 2, 4)

	for range 4 {
		g.KeyPressed(core.KeyRight)
	}
	assertHead(t, g, 6, 4)

	if _, ok := g.Food(); ok {
		t.Fatal("Food should be consumed when the head reaches it")
	}
	if g.Snake().Len() != 3 {
		t.Errorf("Length = %d, expected 3 until the next move", g.Snake().Len())
	}
	if !g.Snake().GrowPending() {
		t.Error("Eating should schedule growth")
	}

	g.KeyPressed(core.KeyRight)
	assertHead(t, g, 7, 4)
	if g.Snake().Len() != 4 {
		t.Errorf("Length = %d, expected 4 after the move following the meal", g.Snake().Len())
	}
}

func TestFoodRespawnsOffSnake(t *testing.T) {
	g := newTestGame()
	g.foodExists = false

	g.Update(0.01)

	food, ok := g.Food()
	if !ok {
		t.Fatal("Update should spawn food when there is none")
	}
	if g.Snake().OverlapTail(food.X, food.Y) {
		t.Errorf("Food spawned on snake at (%d, %d)", food.X, food.Y)
	}
	if food.X < 1 || food.X > 8 || food.Y < 1 || food.Y > 8 {
		t.Errorf("Food spawned outside the interior at (%d, %d)", food.X, food.Y)
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame()

	g.KeyPressed(core.KeyUp)
	assertHead(t, g, 2, 1)

	g.Update(0.05)
	g.KeyPressed(core.KeyUp)

	if !g.GameOver() {
		t.Fatal("Game should be over after hitting the top wall")
	}
	// The fatal step is not taken
	assertHead(t, g, 2, 1)
	if g.WaitingTime() != 0 {
		t.Errorf("WaitingTime = %f, expected reset on death", g.WaitingTime())
	}
}

func TestCheckIfSnakeAliveBorders(t *testing.T) {
	g := newTestGame()

	tests := []struct {
		name  string
		body  []core.Point
		dir   Direction
		alive bool
	}{
		{"into top wall", []core.Point{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}, DirUp, false},
		{"into bottom wall", []core.Point{{X: 4, Y: 8}, {X: 4, Y: 7}, {X: 4, Y: 6}}, DirDown, false},
		{"into left wall", []core.Point{{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}}, DirLeft, false},
		{"into right wall", []core.Point{{X: 8, Y: 4}, {X: 7, Y: 4}, {X: 6, Y: 4}}, DirRight, false},
		{"along the wall", []core.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}, DirRight, true},
		{"to the last interior cell", []core.Point{{X: 7, Y: 8}, {X: 6, Y: 8}, {X: 5, Y: 8}}, DirRight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g.snake = &Snake{body: tc.body, direction: tc.dir}
			if got := g.checkIfSnakeAlive(tc.dir); got != tc.alive {
				t.Errorf("checkIfSnakeAlive(%v) = %v, expected %v", tc.dir, got, tc.alive)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame()

	// A U-shape whose head turns back into its own body
	g.snake = &Snake{
		body: []core.Point{
			{X: 5, Y: 5}, // Head
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		direction: DirUp,
	}
	before := g.Snake().Body()

	g.KeyPressed(core.KeyRight)

	if !g.GameOver() {
		t.Fatal("Game should be over after self collision")
	}
	after := g.Snake().Body()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Snake moved on a fatal step: %v -> %v", before, after)
		}
	}
}

func TestMoveIntoSecondSegment(t *testing.T) {
	g := newTestGame()

	// Bypass the reversal guard: straight back into the neck is fatal
	g.updateSnake(DirLeft)

	if !g.GameOver() {
		t.Fatal("Moving into the second segment should end the game")
	}
	assertHead(t, g, 2, 2)
	if g.Snake().HeadDirection() != DirRight {
		t.Errorf("Heading = %v, expected unchanged Right", g.Snake().HeadDirection())
	}
}

func TestKeysIgnoredWhenGameOver(t *testing.T) {
	g := newTestGame()
	g.updateSnake(DirLeft)

	for _, k := range []core.Key{core.KeyUp, core.KeyDown, core.KeyRight, core.KeyOther} {
		g.KeyPressed(k)
	}

	assertHead(t, g, 2, 2)
	if !g.GameOver() {
		t.Error("Keys should not revive the game")
	}
}

func TestRestartAfterDelay(t *testing.T) {
	g := newTestGame()
	g.KeyPressed(core.KeyDown)
	g.KeyPressed(core.KeyDown)
	g.updateSnake(DirUp)
	if !g.GameOver() {
		t.Fatal("Setup: game should be over")
	}

	for range 3 {
		g.Update(0.25)
		if !g.GameOver() {
			t.Fatal("Game restarted before the restart delay")
		}
	}
	// No food is spawned and nothing moves while dead
	assertHead(t, g, 2, 4)

	g.Update(0.25)

	if g.GameOver() {
		t.Fatal("Game should restart once the delay has elapsed")
	}
	if g.Restarts() != 1 {
		t.Errorf("Restarts = %d, expected 1", g.Restarts())
	}
	assertHead(t, g, 2, 2)
	if g.Snake().Len() != 3 || g.Snake().HeadDirection() != DirRight {
		t.Errorf("Snake not reset: len %d heading %v", g.Snake().Len(), g.Snake().HeadDirection())
	}
	if food, ok := g.Food(); !ok || food != core.Pt(6, 4) {
		t.Errorf("Food = %+v (exists %v), expected (6, 4)", food, ok)
	}
	if g.WaitingTime() != 0 {
		t.Errorf("WaitingTime = %f, expected 0 after restart", g.WaitingTime())
	}

	// The restart frame does nothing else; play resumes on the next one
	g.Update(0.1)
	assertHead(t, g, 3, 2)
	if g.Restarts() != 1 {
		t.Errorf("Restarts = %d, expected exactly one", g.Restarts())
	}
}

func TestRestartWithTenthSecondDeltas(t *testing.T) {
	g := newTestGame()
	g.updateSnake(DirLeft)

	for i := 1; i <= 9; i++ {
		g.Update(0.1)
		if !g.GameOver() {
			t.Fatalf("Game restarted after %d updates", i)
		}
	}
	g.Update(0.1)
	if g.GameOver() {
		t.Fatal("Ten updates of 0.1s should trigger the restart")
	}
	if g.Restarts() != 1 {
		t.Errorf("Restarts = %d, expected 1", g.Restarts())
	}
}

func TestAddFoodLastFreeCell(t *testing.T) {
	g := New(5, 5, WithSeed(7), WithSpawn(core.Pt(2, 2), core.Pt(3, 3)))

	// Cover the 3x3 interior except (3, 3)
	var body []core.Point
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if x == 3 && y == 3 {
				continue
			}
			body = append(body, core.Pt(x, y))
		}
	}
	g.snake = &Snake{body: body, direction: DirRight}
	g.foodExists = false

	if err := g.addFood(); err != nil {
		t.Fatalf("addFood failed: %v", err)
	}
	if food, ok := g.Food(); !ok || food != core.Pt(3, 3) {
		t.Errorf("Food = %+v (exists %v), expected the only free cell (3, 3)", food, ok)
	}
}

func TestAddFoodArenaFull(t *testing.T) {
	g := New(5, 5, WithSeed(7), WithSpawn(core.Pt(2, 2), core.Pt(3, 3)))

	var body []core.Point
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			body = append(body, core.Pt(x, y))
		}
	}
	g.snake = &Snake{body: body, direction: DirRight}
	g.foodExists = false

	if err := g.addFood(); !errors.Is(err, ErrArenaFull) {
		t.Fatalf("addFood() = %v, expected ErrArenaFull", err)
	}
	if _, ok := g.Food(); ok {
		t.Error("Food should not exist when the arena is full")
	}

	// Update copes with a full arena
	g.Update(0.01)
	if _, ok := g.Food(); ok {
		t.Error("Update should not place food on a full arena")
	}
}

func TestFoodSpawnUniformCoverage(t *testing.T) {
	g := New(6, 6, WithSeed(3))

	seen := make(map[core.Point]int)
	for range 2000 {
		g.foodExists = false
		if err := g.addFood(); err != nil {
			t.Fatalf("addFood failed: %v", err)
		}
		food, _ := g.Food()
		if g.Snake().OverlapTail(food.X, food.Y) {
			t.Fatalf("Food spawned on snake at (%d, %d)", food.X, food.Y)
		}
		seen[food]++
	}

	// 16 interior cells, 2 of them under the snake
	if len(seen) != 14 {
		t.Errorf("Food visited %d distinct cells, expected all 14 free cells", len(seen))
	}
}

func TestDraw(t *testing.T) {
	g := newTestGame()
	p := DefaultPalette()

	var d core.DrawList
	g.Draw(&d)

	body := g.Snake().Body()
	blocks := d.Blocks(p.Snake)
	if len(blocks) != len(body) {
		t.Fatalf("Expected %d snake blocks, got %d", len(body), len(blocks))
	}
	for i := range body {
		if blocks[i] != body[i] {
			t.Errorf("Snake block %d = %+v, expected %+v", i, blocks[i], body[i])
		}
	}

	if food := d.Blocks(p.Food); len(food) != 1 || food[0] != core.Pt(6, 4) {
		t.Errorf("Food blocks = %v, expected [(6, 4)]", food)
	}

	walls := d.Rects(p.Border)
	expected := Walls(10, 10)
	if len(walls) != 4 {
		t.Fatalf("Expected 4 walls, got %d", len(walls))
	}
	for i := range expected {
		if walls[i] != expected[i] {
			t.Errorf("Wall %d = %+v, expected %+v", i, walls[i], expected[i])
		}
	}

	if overlay := d.Rects(p.GameOver); len(overlay) != 0 {
		t.Errorf("No overlay expected while playing, got %v", overlay)
	}
}

func TestDrawGameOver(t *testing.T) {
	g := newTestGame()
	g.foodExists = false
	g.updateSnake(DirLeft)

	var d core.DrawList
	g.Draw(&d)

	p := DefaultPalette()
	if food := d.Blocks(p.Food); len(food) != 0 {
		t.Errorf("No food block expected, got %v", food)
	}

	last := d.Ops[len(d.Ops)-1]
	if last.Kind != core.DrawRectangle || last.Color != p.GameOver || last.Rect != core.NewRect(0, 0, 10, 10) {
		t.Errorf("Last op = %+v, expected full-arena overlay", last)
	}
}

func TestRenderToScreen(t *testing.T) {
	g := newTestGame()
	p := DefaultPalette()

	screen := core.NewScreen(g.Width(), g.Height(), p.Background)
	screen.SetLegend(p.Snake, 'o')
	screen.SetLegend(p.Food, '*')
	g.Draw(screen)

	expected := "##########\n" +
		"#........#\n" +
		"#oo......#\n" +
		"#........#\n" +
		"#.....*..#\n" +
		"#........#\n" +
		"#........#\n" +
		"#........#\n" +
		"#........#\n" +
		"##########"
	if got := screen.String(); got != expected {
		t.Errorf("Rendered screen:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New(12, 12, WithSeed(12345))
	g2 := New(12, 12, WithSeed(12345))

	script := rand.New(rand.NewSource(99))
	keys := []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyOther}

	for i := 0; i < 500; i++ {
		if script.Intn(4) == 0 {
			k := keys[script.Intn(len(keys))]
			g1.KeyPressed(k)
			g2.KeyPressed(k)
		}
		dt := float64(script.Intn(50)) / 1000
		g1.Update(dt)
		g2.Update(dt)

		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("Snapshots diverged at frame %d:\n%s\nvs\n%s", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	g := New(8, 8, WithSeed(2024))
	script := rand.New(rand.NewSource(5))
	keys := []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyOther}
	interior := core.NewRect(1, 1, 6, 6)

	check := func(step int) {
		if food, ok := g.Food(); ok && g.Snake().OverlapTail(food.X, food.Y) {
			t.Fatalf("Step %d: food at (%d, %d) is under the snake", step, food.X, food.Y)
		}
		if !g.GameOver() {
			if x, y := g.Snake().HeadPosition(); !interior.Contains(x, y) {
				t.Fatalf("Step %d: head (%d, %d) left the interior while playing", step, x, y)
			}
		}
	}

	for i := 0; i < 5000; i++ {
		if script.Intn(3) == 0 {
			g.KeyPressed(keys[script.Intn(len(keys))])
			check(i)
		}
		g.Update(0.04)
		check(i)
	}

	if g.Restarts() == 0 {
		t.Error("Expected random play to die and restart at least once")
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Arena.Width = 16
	cfg.Arena.Height = 12

	s := SettingsFromConfig(cfg, 77)
	if s.Width != 16 || s.Height != 12 {
		t.Errorf("Arena = %dx%d, expected 16x12", s.Width, s.Height)
	}
	if s.MovingPeriod != 0.1 || s.RestartTime != 1.0 {
		t.Errorf("Timing = %f/%f, expected 0.1/1.0", s.MovingPeriod, s.RestartTime)
	}
	if s.Start != core.Pt(2, 2) || s.InitialFood != core.Pt(6, 4) {
		t.Errorf("Spawn = %+v/%+v, expected (2,2)/(6,4)", s.Start, s.InitialFood)
	}
	if s.Palette != DefaultPalette() {
		t.Errorf("Palette = %+v, expected defaults", s.Palette)
	}

	g := NewFromSettings(s)
	assertHead(t, g, 2, 2)
	if g.Settings().Seed != 77 {
		t.Errorf("Seed = %d, expected 77", g.Settings().Seed)
	}
}
