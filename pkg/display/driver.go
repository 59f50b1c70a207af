package display

import (
	"flag"
	"fmt"

	"github.com/thelolagemann/gbvideo/internal/ppu"
	"github.com/thelolagemann/gbvideo/pkg/display/event"
)

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Initialize attaches the driver to the renderer producing its
	// frames, so that it may toggle its layers.
	Initialize(r *ppu.Renderer)
	// Start the display driver. It blocks until the frames channel is
	// closed, a Quit event is received or the driver is stopped.
	Start(frames <-chan []byte, events <-chan event.Event) error
	// Stop the display driver.
	Stop() error
}

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. Drivers
// should call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed.
func GetDriver(name string) Driver {
	if name == "auto" && len(InstalledDrivers) > 0 {
		return InstalledDrivers[0].Driver
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags registers the options of every installed driver with
// the given flag set, prefixed by the driver's name.
func RegisterFlags(fs *flag.FlagSet) {
	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			name := fmt.Sprintf("%s-%s", driver.Name, opt.Name)
			switch opt.Type {
			case "string":
				fs.StringVar(opt.Value.(*string), name, opt.Default.(string), opt.Description)
			case "bool":
				fs.BoolVar(opt.Value.(*bool), name, opt.Default.(bool), opt.Description)
			case "int":
				fs.IntVar(opt.Value.(*int), name, opt.Default.(int), opt.Description)
			case "float":
				fs.Float64Var(opt.Value.(*float64), name, opt.Default.(float64), opt.Description)
			}
		}
	}
}
