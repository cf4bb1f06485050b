package main

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Official region names keyed by numeric code, as used in datos.gob.cl
// datasets. Static lookup data, never mutated.
var regionesChile = map[string]string{
	"1":  "Tarapacá",
	"2":  "Antofagasta",
	"3":  "Atacama",
	"4":  "Coquimbo",
	"5":  "Valparaíso",
	"6":  "O'Higgins",
	"7":  "Maule",
	"8":  "Biobío",
	"9":  "La Araucanía",
	"10": "Los Lagos",
	"11": "Aysén",
	"12": "Magallanes",
	"13": "Metropolitana de Santiago",
	"14": "Los Ríos",
	"15": "Arica y Parinacota",
	"16": "Ñuble",
}

func regionName(code string) string {
	if name, ok := regionesChile[code]; ok {
		return name
	}
	return "Región " + code
}

// regionCodeByName resolves a region name back to its code. Matching is
// accent-insensitive so hand-typed query values like "valparaiso" work.
func regionCodeByName(name string) (string, bool) {
	for code, n := range regionesChile {
		if n == name {
			return code, true
		}
	}
	folded := foldName(name)
	for code, n := range regionesChile {
		if foldName(n) == folded {
			return code, true
		}
	}
	return "", false
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}
