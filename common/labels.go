package common

type LabelKey string

func (l LabelKey) String() string {
	return string(l)
}

const (
	LabelKeyEnv     LabelKey = "env"
	LabelKeyService LabelKey = "service"
	LabelKeyVersion LabelKey = "version"
	LabelKeyRoute   LabelKey = "route"
)

type Environment string

const (
	EnvProd Environment = "production"
	EnvDev  Environment = "development"
)

func GetEnvironmentLabel() string {
	if Production {
		return string(EnvProd)
	}

	return string(EnvDev)
}
