package main

import (
	"context"
	"os"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/cli"
)

// Se sobreescriben con -ldflags "-X main.version=... -X main.build=...".
var (
	version = "dev"
	build   = "n/a"
)

// @title        Resgatando Vidas 4 Patas API
// @version      1.0
// @description  Catálogo de gatos, solicitações de adoção e lar temporário, e painel administrativo do abrigo.
// @BasePath     /
func main() {
	os.Exit(cli.Execute(context.Background(), "version: "+version+"\nbuild:   "+build, os.Stderr))
}
