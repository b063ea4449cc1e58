package spindle

import "github.com/rs/zerolog"

// joystickRegistry tracks attached devices and the freshest gamepad
// packet timestamp per instance id. Device handles live in the backend;
// the registry owns which instances are open.
type joystickRegistry struct {
	log     zerolog.Logger
	b       backend
	open    map[int32]struct{}
	packets map[int32]uint32
}

func newJoystickRegistry(log zerolog.Logger, b backend) *joystickRegistry {
	return &joystickRegistry{
		log:     log,
		b:       b,
		open:    make(map[int32]struct{}),
		packets: make(map[int32]uint32),
	}
}

// add opens the device at the native device index.
func (r *joystickRegistry) add(index int32) {
	instance, ok := r.b.openJoystick(index)
	if !ok {
		return
	}
	r.open[instance] = struct{}{}
}

// remove closes the device with the given instance id. Unknown ids are
// ignored.
func (r *joystickRegistry) remove(instance int32) {
	if _, ok := r.open[instance]; !ok {
		return
	}
	r.b.closeJoystick(instance)
	delete(r.open, instance)
	delete(r.packets, instance)
	r.log.Info().Int32("instance", instance).Msg("joystick detached")
}

// notePacket records the newest native timestamp seen for an instance.
// Packets may arrive for devices opened elsewhere; they are tracked too.
func (r *joystickRegistry) notePacket(instance int32, timestamp uint32) {
	if last, ok := r.packets[instance]; !ok || timestamp >= last {
		r.packets[instance] = timestamp
	}
}

// lastPacket returns the newest recorded timestamp for an instance.
func (r *joystickRegistry) lastPacket(instance int32) (uint32, bool) {
	ts, ok := r.packets[instance]
	return ts, ok
}

// closeAll closes every open device; part of ordered teardown.
func (r *joystickRegistry) closeAll() {
	for instance := range r.open {
		r.b.closeJoystick(instance)
	}
	clear(r.open)
	clear(r.packets)
}
