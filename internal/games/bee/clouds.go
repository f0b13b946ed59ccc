package bee

import (
	"github.com/vovakirdan/tui-bee/internal/ecs"
)

var cloudShapes = [][]string{
	{" .--. ", "(    )", " `--' "},
	{"  .-.   ", " (   ). ", "(___(__)"},
	{" _ ", "( )"},
}

// spawnClouds scatters the background clouds. They belong to no scene.
func (g *Game) spawnClouds() {
	cc := g.cfg.Clouds
	minX := -float64(cc.Margin)
	maxX := float64(g.runtime.ScreenW + cc.Margin)
	rows := g.groundY - 4
	if rows < 1 {
		rows = 1
	}

	for i := 0; i < cc.Count; i++ {
		e := ecs.Spawn(g.world, Position, Cloud, Background)
		Position.SetValue(e, PositionData{
			X: minX + g.rng.Float64()*(maxX-minX),
			Y: float64(g.rng.Intn(rows)),
		})
		Cloud.SetValue(e, CloudData{
			Vel:   cc.MinSpeed + g.rng.Float64()*(cc.MaxSpeed-cc.MinSpeed),
			MinX:  minX,
			MaxX:  maxX,
			Shape: g.rng.Intn(len(cloudShapes)),
		})
	}
}
