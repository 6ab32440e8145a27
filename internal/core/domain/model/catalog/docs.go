// Package catalog holds the Product aggregate: what the store sells, its
// base price and the paid extras a customer may add to each unit.
package catalog
