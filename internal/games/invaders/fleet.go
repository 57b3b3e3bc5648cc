package invaders

const (
	maxFleetColumns = 10
	maxFleetRows    = 5
)

// NumberAliensX returns how many aliens fit in a row, leaving one alien
// width of margin on each side and one alien width between neighbours.
func NumberAliensX(screenW, alienW int) int {
	if alienW <= 0 {
		return 0
	}
	n := (screenW - 2*alienW) / (2 * alienW)
	return max(min(n, maxFleetColumns), 0)
}

// NumberRows returns how many rows of aliens fit above the ship, leaving
// three alien heights of clearance.
func NumberRows(screenH, shipH, alienH int) int {
	if alienH <= 0 {
		return 0
	}
	n := (screenH - 3*alienH - shipH) / (2 * alienH)
	return max(min(n, maxFleetRows), 0)
}

// createFleet fills the alien group with a full grid at the level-1 layout.
func (g *Game) createFleet() {
	art := g.settings.AlienArt
	cols := NumberAliensX(g.settings.ScreenWidth, art.Width())
	rows := NumberRows(g.settings.ScreenHeight, g.settings.ShipArt.Height(), art.Height())

	for row := range rows {
		for col := range cols {
			g.createAlien(col, row)
		}
	}
}

func (g *Game) createAlien(col, row int) {
	w, h := g.settings.AlienArt.Width(), g.settings.AlienArt.Height()
	g.aliens.Add(NewAlien(g.settings, w+2*w*col, h+2*h*row))
}

// checkFleetEdges reverses the fleet once if any alien touches an edge.
func (g *Game) checkFleetEdges() {
	for _, a := range g.aliens.sprites {
		if a.CheckEdges() {
			g.changeFleetDirection()
			break
		}
	}
}

func (g *Game) changeFleetDirection() {
	for _, a := range g.aliens.sprites {
		a.Drop(g.settings.FleetDropSpeed)
	}
	g.settings.FleetDirection *= -1
}
