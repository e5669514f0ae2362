package repoargs

type RepositoryName string

const (
	CustomerRepoName RepositoryName = "customer"
)
