package postgres

import (
	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/adapters/out/postgres/profilerepo"

	"gorm.io/gorm"
)

// notifyTriggerSQL installs a generic trigger function that announces row
// changes on a per-table channel named "<table>_changed". The payload is the
// operation name only; listeners reload the full dataset on any event.
const notifyTriggerSQL = `
CREATE OR REPLACE FUNCTION notify_table_changed() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify(TG_TABLE_NAME || '_changed', TG_OP);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS orders_changed_trigger ON orders;
CREATE TRIGGER orders_changed_trigger
	AFTER INSERT OR UPDATE OR DELETE ON orders
	FOR EACH STATEMENT EXECUTE FUNCTION notify_table_changed();

DROP TRIGGER IF EXISTS menu_items_changed_trigger ON menu_items;
CREATE TRIGGER menu_items_changed_trigger
	AFTER INSERT OR UPDATE OR DELETE ON menu_items
	FOR EACH STATEMENT EXECUTE FUNCTION notify_table_changed();
`

// Migrate creates or updates the database schema and installs the change
// notification triggers the reconciliation stream depends on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&menurepo.MenuItemDTO{},
		&profilerepo.ProfileDTO{},
	); err != nil {
		return err
	}

	return db.Exec(notifyTriggerSQL).Error
}
