package bullseye

import "testing"

func TestResolve(t *testing.T) {
	tg := Target{X: 650, Y: 250, Radius: 60}
	tests := []struct {
		name string
		x, y float64
		want Outcome
	}{
		{"flying", 400, 200, OutcomeNone},
		{"inside target", 640, 260, OutcomeHit},
		{"below ground", 400, 451, OutcomeMiss},
		{"on ground line", 400, 450, OutcomeNone},
		{"off right", 901, 300, OutcomeOutOfBounds},
		{"off left", -1, 300, OutcomeOutOfBounds},
		{"above top", 400, -300, OutcomeNone},
		// below ground and off the bottom: the ground test wins
		{"below bottom", 400, 501, OutcomeMiss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Projectile{X: tt.x, Y: tt.y}
			if got := Resolve(p, tg, ReferenceLayout); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveHitBeatsMiss(t *testing.T) {
	// a target dipping under the ground line
	tg := Target{X: 400, Y: 440, Radius: 30}
	p := &Projectile{X: 400, Y: 460}
	if got := Resolve(p, tg, ReferenceLayout); got != OutcomeHit {
		t.Errorf("Resolve = %v, want hit", got)
	}
}

func TestResolveSkipsResolved(t *testing.T) {
	tg := Target{X: 650, Y: 250, Radius: 60}
	p := &Projectile{X: 650, Y: 250, Hit: true}
	if got := Resolve(p, tg, ReferenceLayout); got != OutcomeNone {
		t.Errorf("Resolve(hit arrow) = %v, want none", got)
	}
	p = &Projectile{X: 400, Y: 480, Missed: true}
	if got := Resolve(p, tg, ReferenceLayout); got != OutcomeNone {
		t.Errorf("Resolve(missed arrow) = %v, want none", got)
	}
	if got := Resolve(nil, tg, ReferenceLayout); got != OutcomeNone {
		t.Errorf("Resolve(nil) = %v, want none", got)
	}
}
