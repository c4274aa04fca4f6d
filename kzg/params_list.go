package kzg

var (
	// ParamsLogN17 is a parameters set for committing witness vectors of length 2^17,
	// the production size of the protocol.
	ParamsLogN17 = ParametersLiteral{
		Degree: 1 << 17,
	}

	// ParamsLogN10 is a smaller parameters set for tests and demos.
	ParamsLogN10 = ParametersLiteral{
		Degree: 1 << 10,
	}
)
