package obix

import "testing"

func TestZone_fixed(t *testing.T) {
	z := FixedZone(5*int(millisPerHour) + 30*int(millisPerMinute))
	if !z.IsFixed() {
		t.Fatalf("%s failed [kind]", t.Name())
	}

	off, dst := z.offsetAt(0)
	if off != 5*int(millisPerHour)+30*int(millisPerMinute) {
		t.Fatalf("%s failed [offset]: got %d", t.Name(), off)
	}
	if dst {
		t.Fatalf("%s failed [dst]: fixed zones carry no DST rules", t.Name())
	}

	neg := FixedZone(-3 * int(millisPerHour))
	if off, _ = neg.offsetAt(0); off != -3*int(millisPerHour) {
		t.Fatalf("%s failed [negative offset]: got %d", t.Name(), off)
	}
}

func TestZone_zeroValueIsUTC(t *testing.T) {
	var z Zone
	off, dst := z.offsetAt(1114612205250)
	if off != 0 || dst {
		t.Fatalf("%s failed: got offset %d dst %t", t.Name(), off, dst)
	}
	if z.location().String() != `UTC` {
		t.Fatalf("%s failed [location]: got %s", t.Name(), z.location())
	}
	if z.String() != `UTC` {
		t.Fatalf("%s failed [string]: got %q", t.Name(), z.String())
	}
}

func TestZone_equal(t *testing.T) {
	if !UTC.Equal(UTC) {
		t.Fatalf("%s failed [utc self]", t.Name())
	}
	if !FixedZone(1000).Equal(FixedZone(1000)) {
		t.Fatalf("%s failed [fixed same offset]", t.Name())
	}
	if FixedZone(1000).Equal(FixedZone(2000)) {
		t.Fatalf("%s failed [fixed differing offset]", t.Name())
	}
	if FixedZone(0).Equal(UTC) {
		t.Fatalf("%s failed [fixed vs named]", t.Name())
	}
}

func TestZone_providerResolve(t *testing.T) {
	z, err := LoadZone(`UTC`)
	if err != nil {
		t.Fatalf("%s failed [utc]: %v", t.Name(), err)
	}
	if z.ID() != `UTC` {
		t.Fatalf("%s failed [utc id]: got %s", t.Name(), z.ID())
	}

	if _, err = LoadZone(`No/Such_Zone`); err == nil {
		t.Fatalf("%s failed [bogus id]: expected error", t.Name())
	}
}

func TestZone_providerInjection(t *testing.T) {
	defer SetZoneProvider(tzdbProvider{})

	SetZoneProvider(stubProvider{`Custom/Zone`: FixedZone(int(millisPerHour))})

	z, err := LoadZone(`Custom/Zone`)
	if err != nil {
		t.Fatalf("%s failed [custom id]: %v", t.Name(), err)
	}
	if off, _ := z.offsetAt(0); off != int(millisPerHour) {
		t.Fatalf("%s failed [custom offset]: got %d", t.Name(), off)
	}

	if _, err = LoadZone(`UTC`); err == nil {
		t.Fatalf("%s failed [stub miss]: expected error", t.Name())
	}

	// nil injection is ignored
	SetZoneProvider(nil)
	if _, err = LoadZone(`Custom/Zone`); err != nil {
		t.Fatalf("%s failed [nil injection]: %v", t.Name(), err)
	}
}

func TestZone_local(t *testing.T) {
	local := LocalZone()
	if local.location() == nil {
		t.Fatalf("%s failed: nil location", t.Name())
	}
	// resolved once: repeated calls agree
	if again := LocalZone(); !again.Equal(local) {
		t.Fatalf("%s failed [stability]", t.Name())
	}
}

// stubProvider resolves only the identifiers it was built with.
type stubProvider map[string]Zone

func (r stubProvider) Resolve(id string) (Zone, error) {
	z, ok := r[id]
	if !ok {
		return Zone{}, zoneErrorf("unresolvable zone ", id)
	}
	return z, nil
}
