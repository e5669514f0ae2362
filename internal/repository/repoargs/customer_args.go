package repoargs

type CreateCustomer struct {
	TaxID string
	Name  string
}
