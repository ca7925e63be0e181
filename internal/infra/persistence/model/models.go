package model

// All returns every persistence model, in migration order.
func All() []any {
	return []any{
		&MenuItemModel{},
		&OutletModel{},
		&OutletItemConfigModel{},
		&UserModel{},
	}
}
