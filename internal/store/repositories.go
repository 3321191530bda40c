package store

// Repositories groups the repositories bound to one [Querier].
type Repositories struct {
	PartnerTokens PartnerTokenRepository
	Tenants       TenantRepository
	Audit         AuditRepository
}

// NewRepositories binds every repository to q. Within a request q is the
// request transaction, so all reads and writes share it.
func NewRepositories(q Querier) *Repositories {
	classifier := postgresClassifier{}
	return &Repositories{
		PartnerTokens: &partnerTokenRepository{q: q, classifier: classifier},
		Tenants:       &tenantRepository{q: q, classifier: classifier},
		Audit:         &auditRepository{q: q, classifier: classifier},
	}
}
