package widget

const (
	kindButton    = "Button"
	kindTextField = "TextField"
)

// LightButton is the light variant of Button.
type LightButton struct{}

func (LightButton) Render() string { return describe(Light, kindButton) }
func (LightButton) Theme() Theme   { return Light }

// LightTextField is the light variant of TextField.
type LightTextField struct{}

func (LightTextField) Render() string { return describe(Light, kindTextField) }
func (LightTextField) Theme() Theme   { return Light }

// DarkButton is the dark variant of Button.
type DarkButton struct{}

func (DarkButton) Render() string { return describe(Dark, kindButton) }
func (DarkButton) Theme() Theme   { return Dark }

// DarkTextField is the dark variant of TextField.
type DarkTextField struct{}

func (DarkTextField) Render() string { return describe(Dark, kindTextField) }
func (DarkTextField) Theme() Theme   { return Dark }
