package store

import (
	sq "github.com/Masterminds/squirrel"
)

const statusActive = "active"

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var auditEventColumns = []string{
	"id", "tenant_id", "actor_id", "event_type", "entity_id", "reason", "metadata", "created_at",
}

// buildFindActivePartnerTokenQuery joins the token to its agency within the
// same tenant and keeps the pair only when both are active.
func buildFindActivePartnerTokenQuery(digest string) (string, []any, error) {
	return psql.
		Select("t.id", "t.tenant_id", "t.partner_agency_id").
		From("partner_tokens t").
		Join("partner_agencies a ON a.id = t.partner_agency_id AND a.tenant_id = t.tenant_id").
		Where(sq.Eq{"t.token_hash": digest}).
		Where(sq.Eq{"t.status": statusActive}).
		Where(sq.Eq{"a.status": statusActive}).
		Limit(1).
		ToSql()
}

func buildResolveTenantByHostQuery(host string) (string, []any, error) {
	return psql.
		Select("id", "host", "slug", "status").
		From("platform.tenants").
		Where(sq.Expr("LOWER(host) = ?", host)).
		Where(sq.Eq{"status": statusActive}).
		Limit(1).
		ToSql()
}

func buildIsAppEnabledQuery(tenantID, appKey string) (string, []any, error) {
	return psql.
		Select("enabled").
		From("platform.tenant_apps").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.Eq{"app_key": appKey}).
		ToSql()
}

func buildInsertAuditEventQuery(values ...any) (string, []any, error) {
	return psql.
		Insert("audit_events").
		Columns(auditEventColumns...).
		Values(values...).
		ToSql()
}
