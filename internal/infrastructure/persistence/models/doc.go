// Package models contains GORM persistence models that map between database
// rows and domain entities. Domain entities stay free of persistence tags;
// every conversion goes through the ToDomain/FromDomain pairs here.
package models
