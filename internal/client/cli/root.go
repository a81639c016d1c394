package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.identity == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.identity.Username, a.identity.Role)
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the university ERP console (type 'help' for commands)")

	if err := a.service.Ping(ctx); err != nil {
		log.Printf("Server not reachable at %s: %s", a.config.ServerAddr, err.Error())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
