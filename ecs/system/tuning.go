package system

// Tuning holds the gameplay constants systems read every frame. Systems keep
// a pointer to it, so replacing the value in place (hot reload) takes effect
// on the next update.
type Tuning struct {
	// Physics
	Gravity               float64
	WallSlideGravityScale float64
	BounceDamping         float64
	SettleSpeed           float64
	WallSlideMaxFall      float64

	// Player control
	JumpVelocity float64
	WallJumpX    float64
	WallJumpY    float64
	FastFall     float64
	AirControl   float64
	GroundDecel  float64
	AirDecel     float64

	// Pickups and score
	PickupPoints int
	ScoreCap     int

	// Spawning
	SpawnSpeed float64

	// Camera follow, as fractions of the viewport
	CameraOuterEdge    float64
	CameraTrackingZone float64
	CameraTween        float64

	// Names
	CameraName      string
	CollectibleName string
	JumpSound       string
	PickupSound     string
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:               980,
		WallSlideGravityScale: 0.3,
		BounceDamping:         0.7,
		SettleSpeed:           10,
		WallSlideMaxFall:      150,

		JumpVelocity: -400,
		WallJumpX:    250,
		WallJumpY:    -350,
		FastFall:     200,
		AirControl:   0.8,
		GroundDecel:  1.5,
		AirDecel:     0.5,

		PickupPoints: 10,
		ScoreCap:     999,

		SpawnSpeed: 50,

		CameraOuterEdge:    0.10,
		CameraTrackingZone: 0.30,
		CameraTween:        0.05,

		CameraName:      "main_camera",
		CollectibleName: "star",
		JumpSound:       "jump",
		PickupSound:     "sparkle",
	}
}

// SoundPlayer plays a named sound effect. It must not block.
type SoundPlayer interface {
	Play(name string)
}

type noSound struct{}

func (noSound) Play(string) {}

func soundOrSilent(s SoundPlayer) SoundPlayer {
	if s == nil {
		return noSound{}
	}
	return s
}

func tuningOrDefault(t *Tuning) *Tuning {
	if t == nil {
		d := DefaultTuning()
		return &d
	}
	return t
}
