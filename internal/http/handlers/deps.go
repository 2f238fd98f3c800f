package handlers

import (
	"github.com/jmoiron/sqlx"

	"shoplist/internal/repos"
	"shoplist/internal/services"
)

type Deps struct {
	ShoppingListHandler *ShoppingListHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	listRepo := repos.NewShoppingListRepo(db)
	listSvc := services.NewShoppingListService(listRepo)

	return &Deps{
		ShoppingListHandler: &ShoppingListHandler{Lists: listSvc},
	}
}
