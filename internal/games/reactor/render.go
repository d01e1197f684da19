package reactor

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-reactor/internal/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/combat"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

const (
	minScreenW = 60
	minScreenH = 24

	slotBoxH = 5
	handBoxH = 4
	maxBoxW  = 14
	logLines = 3
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.run == nil {
		g.renderOverlay(dst, "Reactor failed to start", g.errorText())
		return
	}
	if g.screenW < minScreenW || g.screenH < minScreenH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.run.Match().Snapshot()
	g.renderHUD(dst, v)
	g.renderShips(dst, v)
	g.renderReactor(dst, v, 7)
	g.renderHand(dst, v, 13)
	g.renderLog(dst, 19)
	g.renderControls(dst)

	switch {
	case g.run.Victory():
		g.renderOverlay(dst, "Campaign cleared!", fmt.Sprintf("Score %d  |  R: new run  B: menu", g.run.Score()))
	case g.run.Over():
		title := "Hull breached"
		if g.run.Resolver().Ship(core.SidePlayer).Alive() {
			title = "The enemy outlasted you"
		}
		g.renderOverlay(dst, title, fmt.Sprintf("Score %d  |  R: new run  B: menu", g.run.Score()))
	case g.run.Stage() == StageReward:
		g.renderReward(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen, v core.View) {
	lvl := g.run.Level()
	hud := fmt.Sprintf(" %s | Level %d/%d %s | Round %d | Score %d | %s",
		g.Title(), g.run.LevelIndex()+1, g.run.LevelCount(), lvl.Name, v.Round+1,
		g.run.Score(), g.run.Difficulty())
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderShips(dst *platformcore.Screen, v core.View) {
	res := g.run.Resolver()
	enemy := res.Ship(core.SideEnemy)
	player := res.Ship(core.SidePlayer)

	g.renderShip(dst, 2, enemy, platformcore.ColorRed)

	// Enemy script: played actions dim, the next one highlighted, unrevealed hidden.
	x := 1
	dst.DrawTextWithColor(x, 3, "Script:", platformcore.ColorGray)
	x += 8
	for i, m := range v.Enemy.Script {
		label := "??"
		color := platformcore.ColorGray
		if m.Status == core.FaceUp {
			label = m.Effect
			color = kindColor(g.kind(m.Effect))
			if i < v.Enemy.ActionIdx {
				color = platformcore.ColorGray
			} else if i == v.Enemy.ActionIdx && v.Phase == core.PhaseEnemy {
				color = platformcore.ColorBrightYellow
			}
		}
		if x+len(label) >= dst.Width() {
			dst.DrawTextWithColor(x, 3, "…", platformcore.ColorGray)
			break
		}
		dst.DrawTextWithColor(x, 3, label, color)
		x += len(label) + 1
	}

	g.renderShip(dst, 4, player, platformcore.ColorGreen)

	phase := v.Phase.String()
	if v.Phase == core.PhaseReactor && v.Resolving {
		phase = "Resolve"
	}
	status := fmt.Sprintf(" Phase %-8s Flux %d  Chain %d  Queue %d  Storage %d  Hand %d/%d",
		phase, v.Flux, v.Chain, len(v.Queue), len(v.Storage), len(v.Hand), v.HandSize)
	dst.DrawTextWithColor(0, 5, status, platformcore.ColorWhite)
}

func (g *Game) renderShip(dst *platformcore.Screen, y int, s *combat.Ship, c platformcore.Color) {
	name := fmt.Sprintf(" %-10.10s", s.Name)
	dst.DrawTextWithColor(0, y, name, c)
	barW := platformcore.Min(24, dst.Width()-40)
	dst.DrawBar(12, y, barW, s.HullRatio(), c)
	info := fmt.Sprintf("%.0f/%.0f", max(s.Hull, 0), s.MaxHull)
	if s.Armor > 0 {
		info += fmt.Sprintf("  armor %.0f", s.Armor)
	}
	if s.Burn > 0 {
		info += fmt.Sprintf("  burn %.0f", s.Burn)
	}
	dst.DrawTextWithColor(13+barW, y, info, platformcore.ColorWhite)
}

func (g *Game) renderReactor(dst *platformcore.Screen, v core.View, y int) {
	dst.DrawTextWithColor(1, y, fmt.Sprintf("REACTOR  heat cap %.1f", v.HeatCapacity), platformcore.ColorGray)
	w := boxWidth(dst.Width(), len(v.Reactor))
	for i, m := range v.Reactor {
		r := platformcore.NewRect(1+i*w, y+1, w-1, slotBoxH)
		color := statusColor(m.Status)
		if i == v.LastTouched {
			color = platformcore.ColorBrightWhite
		}
		dst.DrawBoxWithColor(r, color)
		if m.Status == core.SlotEmpty {
			dst.DrawTextWithColor(r.X+1, r.Y+2, fit("empty", r.W-2), platformcore.ColorGray)
			continue
		}
		g.drawModule(dst, r, m)
		heat := fmt.Sprintf("%.1f", m.Heat)
		if m.Status == core.SlotOverheated {
			heat = "HOT"
		}
		dst.DrawTextWithColor(r.X+1, r.Y+3, fit(heat, r.W-2), statusColor(m.Status))
	}
}

func (g *Game) renderHand(dst *platformcore.Screen, v core.View, y int) {
	dst.DrawTextWithColor(1, y, "HAND", platformcore.ColorGray)
	w := boxWidth(dst.Width(), max(len(v.Hand), 1))
	helm := v.Phase == core.PhaseHelm && !v.Halted
	for i, m := range v.Hand {
		r := platformcore.NewRect(1+i*w, y+1, w-1, handBoxH)
		color := platformcore.ColorWhite
		if helm && i == v.HandIdx {
			color = platformcore.ColorBrightYellow
			dst.DrawTextWithColor(r.X+r.W/2, r.Bottom(), "▲", color)
		}
		dst.DrawBoxWithColor(r, color)
		g.drawModule(dst, r, m)
	}
}

// drawModule writes condition and effect on the first two inner rows.
func (g *Game) drawModule(dst *platformcore.Screen, r platformcore.Rect, m core.Module) {
	cond := m.Condition
	if m.IsWildcard() {
		cond = "*"
	}
	dst.DrawTextWithColor(r.X+1, r.Y+1, fit(cond, r.W-2), kindColor(g.kind(m.Condition)))
	dst.DrawTextWithColor(r.X+1, r.Y+2, fit(">"+m.Effect, r.W-2), kindColor(g.kind(m.Effect)))
}

func (g *Game) renderLog(dst *platformcore.Screen, y int) {
	events := g.run.Resolver().Events()
	if len(events) > logLines {
		events = events[len(events)-logLines:]
	}
	for i, e := range events {
		color := platformcore.ColorGray
		if e.Action.Source == core.SidePlayer && !e.Burn {
			color = platformcore.ColorWhite
		}
		dst.DrawTextWithColor(1, y+i, fit(e.String(), dst.Width()-2), color)
	}
}

func (g *Game) renderControls(dst *platformcore.Screen) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y-1, dst.Width(), '─')
	controls := " ←/→: Select | Enter: Play | X: Discard | E: End turn | P: Pause | B: Menu"
	if g.auto {
		controls = " Autopilot | P: Pause | B: Menu"
	}
	dst.DrawTextWithColor(0, y, fit(controls, dst.Width()), platformcore.ColorGray)
}

func (g *Game) renderReward(dst *platformcore.Screen) {
	ups := g.run.Upgrades()
	w := 40
	h := len(ups) + 5
	r := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBoxWithColor(r, platformcore.ColorYellow)
	dst.DrawTextWithColor(r.X+2, r.Y+1, fmt.Sprintf("%s destroyed! Choose an upgrade:", g.run.Resolver().Ship(core.SideEnemy).Name), platformcore.ColorYellow)
	for i, u := range ups {
		prefix := "  "
		color := platformcore.ColorWhite
		if i == g.rewardIdx {
			prefix = "> "
			color = platformcore.ColorBrightYellow
		}
		dst.DrawTextWithColor(r.X+2, r.Y+3+i, fit(prefix+u.String(), w-4), color)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	w := platformcore.Max(len(title), len(subtitle)) + 6
	w = platformcore.Min(w, dst.Width())
	h := 5
	r := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBoxWithColor(r, platformcore.ColorWhite)
	dst.DrawTextCenteredWithColor(r.Y+1, title, platformcore.ColorBrightWhite)
	dst.DrawTextCenteredWithColor(r.Y+3, subtitle, platformcore.ColorGray)
}

// kind looks an action id up in the run's catalog.
func (g *Game) kind(id string) (core.Kind, bool) {
	spec, ok := g.run.catalog[id]
	return spec.Kind, ok
}

func kindColor(k core.Kind, ok bool) platformcore.Color {
	if !ok {
		return platformcore.ColorWhite
	}
	switch k {
	case core.KindMissile:
		return platformcore.ColorYellow
	case core.KindLaser:
		return platformcore.ColorCyan
	case core.KindFire:
		return platformcore.ColorRed
	case core.KindHeal:
		return platformcore.ColorGreen
	default:
		return platformcore.ColorWhite
	}
}

func statusColor(s core.Status) platformcore.Color {
	switch s {
	case core.SlotActive:
		return platformcore.ColorBrightYellow
	case core.SlotOverheated:
		return platformcore.ColorRed
	case core.SlotEmpty:
		return platformcore.ColorGray
	default:
		return platformcore.ColorWhite
	}
}

func boxWidth(screenW, n int) int {
	if n <= 0 {
		return maxBoxW
	}
	return platformcore.Min(maxBoxW, (screenW-2)/n)
}

// fit truncates s to at most n runes.
func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
