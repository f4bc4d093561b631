// Package staff models shop delivery staff, the people a shop assigns delivery packages to.
package staff
