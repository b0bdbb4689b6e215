package component

import "github.com/milk9111/starfall/ecs"

// Key is a logical game key. Hosts translate their own key codes into it.
type Key uint8

//go:generate go tool stringer -type=Key -trimprefix=Key

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyDown
	KeyCount
)

// Input holds the keys currently held down. The entity carrying it is the
// player.
type Input struct {
	held uint32
}

func (i *Input) Set(k Key, down bool) {
	if k >= KeyCount {
		return
	}
	if down {
		i.held |= 1 << k
	} else {
		i.held &^= 1 << k
	}
}

func (i Input) Held(k Key) bool {
	return k < KeyCount && i.held&(1<<k) != 0
}

func (i *Input) Reset() {
	i.held = 0
}

var InputComponent = ecs.Register[Input](Types, "input")
