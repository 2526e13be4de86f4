package systems

import (
	"math"

	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/input"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies input, gravity and tile collision to every player for
// one tick of dt seconds.
func UpdatePlayer(w donburi.World, dt float64) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		handleInput(player)

		player.Velocity.Y += cfg.Player.Gravity * dt
		player.Velocity.Y = math.Max(-cfg.Player.Speed, math.Min(cfg.Player.Speed, player.Velocity.Y))

		resolveHorizontal(player, obj.Object, player.Velocity.X*dt)
		resolveVertical(player, obj.Object, player.Velocity.Y*dt)

		player.StateTime += dt
		updateClip(components.Animation.Get(e), player)
	})
}

func handleInput(player *components.PlayerData) {
	src := player.Input
	if src == nil {
		return
	}

	if src.JustPressed(input.ActionJump) && player.CanJump {
		player.Velocity.Y = -cfg.Player.Speed / cfg.Player.JumpDivisor
		player.CanJump = false
	}

	if src.JustPressed(input.ActionMoveLeft) {
		player.Velocity.X = -cfg.Player.Speed
		player.StateTime = 0
	}
	if src.JustPressed(input.ActionMoveRight) {
		player.Velocity.X = cfg.Player.Speed
		player.StateTime = 0
	}
	if src.JustReleased(input.ActionMoveLeft) || src.JustReleased(input.ActionMoveRight) {
		player.Velocity.X = 0
		player.StateTime = 0
	}
}

// SyncPlayerInput reconciles horizontal velocity with the keys held now.
// Edges that fired while the simulation was frozen never reach UpdatePlayer.
func SyncPlayerInput(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		src := player.Input
		if src == nil {
			return
		}

		left := src.Pressed(input.ActionMoveLeft)
		right := src.Pressed(input.ActionMoveRight)

		vx := player.Velocity.X
		if (vx < 0 && !left) || (vx > 0 && !right) {
			vx = 0
		}
		if vx == 0 {
			switch {
			case left && !right:
				vx = -cfg.Player.Speed
			case right && !left:
				vx = cfg.Player.Speed
			}
		}
		if vx != player.Velocity.X {
			player.Velocity.X = vx
			player.StateTime = 0
		}
	})
}

// resolveHorizontal moves obj by dx, stopping flush against the nearest solid.
func resolveHorizontal(player *components.PlayerData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solid := nearestSolid(obj, check.ObjectsByTags(tags.ResolvSolid), dx, 0); solid != nil {
			dx = check.ContactWithObject(solid).X()
			player.Velocity.X = 0
		}
	}

	obj.X += dx
	obj.Update()
}

// resolveVertical moves obj by dy. Landing while falling re-arms the jump;
// falling without ground under the feet disarms it.
func resolveVertical(player *components.PlayerData, obj *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}

	falling := dy > 0
	hit := false
	if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
		if solid := nearestSolid(obj, check.ObjectsByTags(tags.ResolvSolid), 0, dy); solid != nil {
			dy = check.ContactWithObject(solid).Y()
			player.Velocity.Y = 0
			hit = true
		}
	}
	if falling {
		player.CanJump = hit
	}

	obj.Y += dy
	obj.Update()
}

// nearestSolid returns the solid that obj would overlap after moving by
// (dx, dy) and that is closest along the direction of travel.
func nearestSolid(obj *resolv.Object, solids []*resolv.Object, dx, dy float64) *resolv.Object {
	x, y := obj.X+dx, obj.Y+dy
	var best *resolv.Object
	bestDist := math.Inf(1)

	for _, s := range solids {
		if x+obj.W <= s.X || x >= s.X+s.W || y+obj.H <= s.Y || y >= s.Y+s.H {
			continue
		}
		var dist float64
		switch {
		case dx > 0:
			dist = s.X - (obj.X + obj.W)
		case dx < 0:
			dist = obj.X - (s.X + s.W)
		case dy > 0:
			dist = s.Y - (obj.Y + obj.H)
		default:
			dist = obj.Y - (s.Y + s.H)
		}
		if dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return best
}

func updateClip(anim *components.AnimationData, player *components.PlayerData) {
	switch {
	case player.Velocity.X < 0:
		anim.SetClip(components.ClipLeft)
	case player.Velocity.X > 0:
		anim.SetClip(components.ClipRight)
	default:
		anim.SetClip(components.ClipStill)
	}
}
