package clients_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"careercompass/internal/clients"
)

var Module = fx.Provide(
	provideUsersClient,
	provideTextAnalysisClient,
	provideRankingClient,
	provideSocialMediaClient,
)

func provideUsersClient() clients.UsersAPIClientInterface {
	return clients.NewUsersAPIClient(os.Getenv("USERS_API_URL"))
}

func provideTextAnalysisClient() clients.TextAnalysisClientInterface {
	return clients.NewAzureLanguageClient(
		os.Getenv("AZURE_LANGUAGE_ENDPOINT"),
		os.Getenv("AZURE_LANGUAGE_KEY"),
	)
}

func provideRankingClient() clients.RankingClientInterface {
	client, err := clients.NewRankingClient(
		os.Getenv("RANKING_PROVIDER"),
		os.Getenv("RANKING_API_KEY"),
		os.Getenv("RANKING_MODEL"),
	)
	if err != nil {
		log.Fatalf("Failed to create ranking client: %v", err)
	}
	return client
}

func provideSocialMediaClient() clients.SocialMediaClientInterface {
	return clients.NewRedditClient(os.Getenv("REDDIT_USER_AGENT"))
}
