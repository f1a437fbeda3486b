package physconst

// Named is the attribute-style view over the constants: one field per
// constant in the default dataset, each sugar over Get with the label baked
// in, captured once during Build. Go has no dynamic attributes, so the set
// is fixed; a field whose constant is absent from the dataset stays zero,
// which is never a valid constant value.
//
// All values are the nearest-float64 views; use GetDecimal with the same
// label for the exact decimal.
type Named struct {
	SpeedOfLight                 float64 // m s^-1
	PlanckConstant               float64 // J s
	PlanckConstantOver2Pi        float64 // J s
	GravitationConstant          float64 // m^3 kg^-1 s^-2
	ElementaryCharge             float64 // C
	ElectronMass                 float64 // kg
	ElectronMassInU              float64 // u
	ProtonMass                   float64 // kg
	NeutronMass                  float64 // kg
	ProtonElectronMassRatio      float64
	AtomicMassConstant           float64 // kg
	AtomicMassConstantMeV        float64 // MeV
	AvogadroConstant             float64 // mol^-1
	BoltzmannConstant            float64 // J K^-1
	MolarGasConstant             float64 // J mol^-1 K^-1
	FineStructureConstant        float64
	InverseFineStructureConstant float64
	RydbergConstant              float64 // m^-1
	BohrRadius                   float64 // m
	BohrMagneton                 float64 // J T^-1
	NuclearMagneton              float64 // J T^-1
	HartreeEnergy                float64 // J
	Hartree2EV                   float64 // eV
	Hartree2Joule                float64 // J
	Hartree2Hertz                float64 // Hz
	Hartree2InverseMeter         float64 // m^-1
	Hartree2Kelvin               float64 // K
	Hartree2Kilogram             float64 // kg
	Hartree2AMU                  float64 // u
	ElectronVolt                 float64 // J
	EV2Hartree                   float64 // E_h
	EV2Joule                     float64 // J
	AMU2EV                       float64 // eV
	AtomicUnitOfEnergy           float64 // J
	AtomicUnitOfLength           float64 // m
	AtomicUnitOfMass             float64 // kg
	AtomicUnitOfTime             float64 // s
	AtomicUnitOfCharge           float64 // C
	StefanBoltzmannConstant      float64 // W m^-2 K^-4
	ClassicalElectronRadius      float64 // m
	ComptonWavelength            float64 // m
	ElectricConstant             float64 // F m^-1
	MagneticConstant             float64 // N A^-2
	StandardGravity              float64 // m s^-2
	StandardAtmosphere           float64 // Pa
}

func bakeNamed(c *Constants) Named {
	get := func(label string) float64 {
		v, err := c.Get(label)
		if err != nil {
			return 0
		}
		return v
	}
	return Named{
		SpeedOfLight:                 get("speed of light in vacuum"),
		PlanckConstant:               get("Planck constant"),
		PlanckConstantOver2Pi:        get("Planck constant over 2 pi"),
		GravitationConstant:          get("Newtonian constant of gravitation"),
		ElementaryCharge:             get("elementary charge"),
		ElectronMass:                 get("electron mass"),
		ElectronMassInU:              get("electron mass in u"),
		ProtonMass:                   get("proton mass"),
		NeutronMass:                  get("neutron mass"),
		ProtonElectronMassRatio:      get("proton-electron mass ratio"),
		AtomicMassConstant:           get("atomic mass constant"),
		AtomicMassConstantMeV:        get("atomic mass constant energy equivalent in MeV"),
		AvogadroConstant:             get("Avogadro constant"),
		BoltzmannConstant:            get("Boltzmann constant"),
		MolarGasConstant:             get("molar gas constant"),
		FineStructureConstant:        get("fine-structure constant"),
		InverseFineStructureConstant: get("inverse fine-structure constant"),
		RydbergConstant:              get("Rydberg constant"),
		BohrRadius:                   get("Bohr radius"),
		BohrMagneton:                 get("Bohr magneton"),
		NuclearMagneton:              get("nuclear magneton"),
		HartreeEnergy:                get("Hartree energy"),
		Hartree2EV:                   get("Hartree energy in eV"),
		Hartree2Joule:                get("hartree-joule relationship"),
		Hartree2Hertz:                get("hartree-hertz relationship"),
		Hartree2InverseMeter:         get("hartree-inverse meter relationship"),
		Hartree2Kelvin:               get("hartree-kelvin relationship"),
		Hartree2Kilogram:             get("hartree-kilogram relationship"),
		Hartree2AMU:                  get("hartree-atomic mass unit relationship"),
		ElectronVolt:                 get("electron volt"),
		EV2Hartree:                   get("electron volt-hartree relationship"),
		EV2Joule:                     get("electron volt-joule relationship"),
		AMU2EV:                       get("atomic mass unit-electron volt relationship"),
		AtomicUnitOfEnergy:           get("atomic unit of energy"),
		AtomicUnitOfLength:           get("atomic unit of length"),
		AtomicUnitOfMass:             get("atomic unit of mass"),
		AtomicUnitOfTime:             get("atomic unit of time"),
		AtomicUnitOfCharge:           get("atomic unit of charge"),
		StefanBoltzmannConstant:      get("Stefan-Boltzmann constant"),
		ClassicalElectronRadius:      get("classical electron radius"),
		ComptonWavelength:            get("Compton wavelength"),
		ElectricConstant:             get("electric constant"),
		MagneticConstant:             get("magnetic constant"),
		StandardGravity:              get("standard acceleration of gravity"),
		StandardAtmosphere:           get("standard atmosphere"),
	}
}
