package biome

const (
	// SnowAndIceMaxTemperature is the highest configured temperature at which
	// snow and ice form in a biome.
	SnowAndIceMaxTemperature = 0.15
	// rainEpsilon is the rainfall at or below which rain is disabled.
	rainEpsilon = 0.0001

	lowTemperature, highTemperature = 0.1, 0.2
	// temperatureReferenceThreshold is the reference temperature from which
	// forbidden temperatures snap upwards.
	temperatureReferenceThreshold = 1.5
)

// Properties holds the climate and visual properties of a biome.
type Properties struct {
	BaseHeight      float64
	HeightVariation float64
	Rainfall        float64
	Temperature     float64
	WaterColour     int
	SkyColour       int
	RainDisabled    bool
	SnowEnabled     bool
}

// PropertiesOf builds the Properties described by conf.
func PropertiesOf(conf Config) Properties {
	return Properties{
		BaseHeight:      conf.BaseHeight,
		HeightVariation: conf.HeightVariation,
		Rainfall:        conf.Rainfall,
		WaterColour:     conf.WaterColour,
		Temperature:     ClampTemperature(conf.Temperature, conf.temperatureReference()),
		SkyColour:       conf.SkyColour,
		RainDisabled:    conf.Rainfall <= rainEpsilon,
		SnowEnabled:     conf.Temperature <= SnowAndIceMaxTemperature,
	}
}

// ClampTemperature moves temperatures strictly between 0.1 and 0.2 out of
// that interval, which the colour and precipitation tables of the client do
// not support. Such a temperature becomes 0.2 if reference is at least 1.5 and
// 0.1 otherwise. Other temperatures are returned unchanged.
func ClampTemperature(temperature, reference float64) float64 {
	if temperature <= lowTemperature || temperature >= highTemperature {
		return temperature
	}
	if reference >= temperatureReferenceThreshold {
		return highTemperature
	}
	return lowTemperature
}
