package config

// Camera pixel formats stored in the "color format" item.
const (
	FormatGray int32 = iota
	FormatColor
)

// ScreenConfig holds application screen settings.
type ScreenConfig struct {
	Width  Item
	Height Item
	Rate   Item
}

// SerialConfig holds serial connection settings.
type SerialConfig struct {
	Enabled  Item
	DeviceID Item
	Baudrate Item
}

// PIDConfig holds PID controller gains.
type PIDConfig struct {
	Kp Item
	Ki Item
	Kd Item
}

// RangeConfig holds a min/max pair.
type RangeConfig struct {
	Min Item
	Max Item
}

// VisionConfig holds computer vision settings.
type VisionConfig struct {
	DisplayDebug Item
	TrackBall    Item
	BallRadius   RangeConfig
}

// FrameConfig holds camera frame settings.
type FrameConfig struct {
	Width  Item
	Height Item
	Rate   Item
}

// Size returns the size of a camera frame with the given pixel depth.
func (f *FrameConfig) Size(depth int) int {
	return depth * f.Width.ConvertInt() * f.Height.ConvertInt()
}

// BalanceConfig holds color balance settings.
type BalanceConfig struct {
	Red       Item
	Green     Item
	Blue      Item
	AutoWhite Item
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	Frame      FrameConfig
	Balance    BalanceConfig
	Format     Item
	Exposure   Item
	Sharpness  Item
	Contrast   Item
	Brightness Item
	Hue        Item
	Gain       Item
	AutoGain   Item
}

// Tree is the fixed hierarchy of every configuration item in the
// application. Its shape is fixed at definition time: no items are added
// or removed at runtime. Build one with Defaults and keep it for the
// full process lifetime; menus and persisters hold references into it.
type Tree struct {
	Screen ScreenConfig
	Serial SerialConfig
	PID    PIDConfig
	Vision VisionConfig
	Camera CameraConfig
}

// Defaults returns a tree with every item populated with its fixed
// display name and initial value. This is the sole place default values
// are declared.
func Defaults() *Tree {
	return &Tree{
		Screen: ScreenConfig{
			Width:  NewInt32("screen width", 800),
			Height: NewInt32("screen height", 600),
			Rate:   NewInt32("screen rate", 60),
		},
		Serial: SerialConfig{
			Enabled:  NewBool("serial enabled", true),
			DeviceID: NewInt32("device id", 0),
			Baudrate: NewInt32("baudrate", 115200),
		},
		PID: PIDConfig{
			Kp: NewFloat64("proportional", 0.3),
			Ki: NewFloat64("integral", 0.001),
			Kd: NewFloat64("derivative", 5.0),
		},
		Vision: VisionConfig{
			DisplayDebug: NewBool("display debug", true),
			TrackBall:    NewBool("ball tracking", true),
			BallRadius: RangeConfig{
				Min: NewInt32("min. ball radius", 5),
				Max: NewInt32("max. ball radius", 75),
			},
		},
		Camera: CameraConfig{
			Frame: FrameConfig{
				Width:  NewInt32("frame width", 640),
				Height: NewInt32("frame height", 480),
				Rate:   NewInt32("frame rate", 60),
			},
			Balance: BalanceConfig{
				Red:       NewUint8("red balance", 128),
				Green:     NewUint8("green balance", 128),
				Blue:      NewUint8("blue balance", 128),
				AutoWhite: NewBool("auto white bal.", false),
			},
			Format:     NewInt32("color format", FormatGray),
			Exposure:   NewUint8("exposure", 20),
			Sharpness:  NewUint8("sharpness", 128),
			Contrast:   NewUint8("contrast", 128),
			Brightness: NewUint8("brightness", 128),
			Hue:        NewUint8("hue", 128),
			Gain:       NewUint8("gain", 20),
			AutoGain:   NewBool("auto gain", false),
		},
	}
}

// Flatten returns references to every item in the tree in a fixed,
// deterministic order. The order is identical between calls so that item
// N on load corresponds to item N on save.
func (t *Tree) Flatten() []*Item {
	return []*Item{
		&t.Screen.Width,
		&t.Screen.Height,
		&t.Screen.Rate,
		&t.Serial.Enabled,
		&t.Serial.DeviceID,
		&t.Serial.Baudrate,
		&t.PID.Kp,
		&t.PID.Ki,
		&t.PID.Kd,
		&t.Vision.DisplayDebug,
		&t.Vision.TrackBall,
		&t.Vision.BallRadius.Min,
		&t.Vision.BallRadius.Max,
		&t.Camera.Frame.Width,
		&t.Camera.Frame.Height,
		&t.Camera.Frame.Rate,
		&t.Camera.Balance.Red,
		&t.Camera.Balance.Blue,
		&t.Camera.Balance.Green,
		&t.Camera.Balance.AutoWhite,
		&t.Camera.Format,
		&t.Camera.Exposure,
		&t.Camera.Sharpness,
		&t.Camera.Contrast,
		&t.Camera.Brightness,
		&t.Camera.Hue,
		&t.Camera.Gain,
		&t.Camera.AutoGain,
	}
}

// Equal reports structural equality of two trees.
func (t *Tree) Equal(other *Tree) bool {
	return *t == *other
}
