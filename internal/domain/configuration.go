package domain

// Configuration is the file form of a single tax run.
type Configuration struct {
	Taxpayer      TaxpayerProfile      `yaml:"taxpayer" json:"taxpayer" toml:"taxpayer"`
	Contributions ContributionElection `yaml:"contributions" json:"contributions" toml:"contributions"`
	Income        IncomeFacts          `yaml:"income" json:"income" toml:"income"`
}

// Facts returns the income section with the taxpayer's salary filled in.
func (c *Configuration) Facts() IncomeFacts {
	f := c.Income
	f.MonthlySalary = c.Taxpayer.MonthlySalary
	return f
}
