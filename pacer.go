package spindle

// pacer owns the compositor frame-callback handshake: idle when no
// request is outstanding, awaiting once one has been issued. While
// awaiting, the loop suppresses drawing; the update phase is unaffected.
type pacer struct {
	enabled  bool
	awaiting bool
	request  func() bool
}

func newPacer(enabled bool, request func() bool) *pacer {
	return &pacer{enabled: enabled, request: request}
}

// pace runs once per loop iteration after the event pump and reports
// whether this iteration's draw must be suppressed. When idle and
// enabled it issues exactly one new frame request; a failed request
// (no surface, no bridge) leaves the pacer permanently idle so it never
// suppresses anything.
func (p *pacer) pace() bool {
	if p.awaiting {
		return true
	}
	if !p.enabled {
		return false
	}
	if p.request() {
		p.awaiting = true
	}
	return false
}

// frameDone returns the pacer to idle. The native done callback invokes
// it synchronously inside the event pump, on the loop thread.
func (p *pacer) frameDone() {
	p.awaiting = false
}
