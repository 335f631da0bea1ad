package configs

// S3 configures the object store for campaign images. The defaults match
// a local minio; Endpoint must include the scheme.
type S3 struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"http://localhost:9000"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	Bucket    string `env:"BUCKET" envDefault:"campaign-images"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"SECRET_KEY" envDefault:"minioadmin"`
}
