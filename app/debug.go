//go:build !release

package app

const enableValidationLayers = true
