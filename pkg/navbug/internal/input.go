package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
)

// InputSource identifies which device an event came from.
type InputSource int

const (
	InputSourceKeyboard InputSource = iota
	InputSourceController
	InputSourceEvdev
)

// InputEvent is a physical button press or release translated to a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  InputSource
}

// InputProcessor translates SDL keyboard and game controller events.
type InputProcessor struct {
	keyboard    map[sdl.Keycode]constants.VirtualButton
	controller  map[sdl.GameControllerButton]constants.VirtualButton
	controllers map[sdl.JoystickID]*sdl.GameController
}

var processor *InputProcessor

var DefaultKeyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_q:         constants.VirtualButtonL1,
	sdl.K_e:         constants.VirtualButtonR1,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_h:         constants.VirtualButtonMenu,
}

var DefaultControllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

func InitInputProcessor() {
	processor = &InputProcessor{
		keyboard:    DefaultKeyboardMapping,
		controller:  DefaultControllerMapping,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return processor
}

// ProcessSDLEvent translates event. It returns nil for events that are not
// mapped buttons; controller hot plugging is handled here as a side effect.
func (ip *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := ip.keyboard[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Source: InputSourceKeyboard}

	case *sdl.ControllerButtonEvent:
		button, ok := ip.controller[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Source: InputSourceController}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			ip.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			ip.closeController(e.Which)
		}
	}
	return nil
}

func (ip *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	if _, exists := ip.controllers[id]; exists {
		controller.Close()
		return
	}
	ip.controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "name", controller.Name(), "id", id)
}

func (ip *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, exists := ip.controllers[id]; exists {
		controller.Close()
		delete(ip.controllers, id)
	}
}

func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, controller := range processor.controllers {
		controller.Close()
		delete(processor.controllers, id)
	}
}
