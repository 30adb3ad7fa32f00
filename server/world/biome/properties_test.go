package biome

import "testing"

func TestClampTemperature(t *testing.T) {
	cases := []struct {
		temperature, reference, want float64
	}{
		{0.15, 1.5, 0.2},
		{0.15, 2.0, 0.2},
		{0.15, 1.49, 0.1},
		{0.15, 0.15, 0.1},
		{0.11, -1, 0.1},
		{0.19, 1.5, 0.2},
		{0.1, 2.0, 0.1},
		{0.2, 0.0, 0.2},
		{0.05, 2.0, 0.05},
		{0.8, 0.0, 0.8},
		{-0.5, 2.0, -0.5},
	}
	for _, c := range cases {
		if got := ClampTemperature(c.temperature, c.reference); got != c.want {
			t.Fatalf("ClampTemperature(%v, %v) = %v, want %v", c.temperature, c.reference, got, c.want)
		}
	}
}

func TestPropertiesOfUsesUnclampedReference(t *testing.T) {
	reference := 1.5
	props := PropertiesOf(Config{Temperature: 0.15, UnclampedTemperature: &reference})
	if props.Temperature != 0.2 {
		t.Fatalf("Temperature = %v, want 0.2", props.Temperature)
	}
	props = PropertiesOf(Config{Temperature: 0.15})
	if props.Temperature != 0.1 {
		t.Fatalf("Temperature without reference = %v, want 0.1", props.Temperature)
	}
}

func TestPropertiesOfFlags(t *testing.T) {
	cases := []struct {
		name               string
		conf               Config
		wantRain, wantSnow bool
	}{
		{"dry", Config{Rainfall: 0, Temperature: 2}, true, false},
		{"almost dry", Config{Rainfall: 0.0001, Temperature: 2}, true, false},
		{"wet", Config{Rainfall: 0.0002, Temperature: 2}, false, false},
		{"snowy", Config{Rainfall: 0.5, Temperature: 0.15}, false, true},
		{"cold clamped", Config{Rainfall: 0.5, Temperature: 0.12}, false, true},
		{"mild", Config{Rainfall: 0.5, Temperature: 0.16}, false, false},
	}
	for _, c := range cases {
		props := PropertiesOf(c.conf)
		if props.RainDisabled != c.wantRain || props.SnowEnabled != c.wantSnow {
			t.Fatalf("%s: rain disabled=%v snow=%v, want %v/%v", c.name, props.RainDisabled, props.SnowEnabled, c.wantRain, c.wantSnow)
		}
	}
}

func TestPropertiesOfCopiesVerbatim(t *testing.T) {
	conf := Config{BaseHeight: 0.125, HeightVariation: 0.05, Rainfall: 0.4, WaterColour: 0x3f76e4, SkyColour: 0x7ba4ff, Temperature: 0.8}
	props := PropertiesOf(conf)
	want := Properties{BaseHeight: 0.125, HeightVariation: 0.05, Rainfall: 0.4, WaterColour: 0x3f76e4, SkyColour: 0x7ba4ff, Temperature: 0.8}
	if props != want {
		t.Fatalf("PropertiesOf returned %+v, want %+v", props, want)
	}
}
