package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/edocta/consulta-vehicular/cmd/consulta/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	commands.ExecuteContext(ctx)
}
