package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/app"
	"github.com/sidereusnuntius/spacebook/internal/client"
	"github.com/sidereusnuntius/spacebook/internal/config"
	"github.com/sidereusnuntius/spacebook/internal/domain"
	"github.com/sidereusnuntius/spacebook/internal/drafts"
	"github.com/sidereusnuntius/spacebook/internal/initialization"
	"github.com/sidereusnuntius/spacebook/internal/session"
	"github.com/sidereusnuntius/spacebook/internal/storage/kvstore"
	"github.com/sidereusnuntius/spacebook/internal/storage/photocache"

	_ "github.com/mattn/go-sqlite3"
)

// consoleNotifier plays the role the toast layer plays in the mobile client.
type consoleNotifier struct{}

func (consoleNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// consoleNavigator prints navigation intents instead of switching screens;
// the CLI has no navigation stack.
type consoleNavigator struct{}

func (consoleNavigator) Navigate(route string, params map[string]string) {
	if route == app.RouteLogin {
		fmt.Fprintln(os.Stderr, "You are not logged in. Run: spacebook login -email <email> -password <password>")
	}
}

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to open local store")
	}
	defer d.Close()

	if err = initialization.SetupDB(d, cfg.MigrationsFolder, filepath.Base(cfg.DbUrl)); err != nil {
		zero.Fatal().Err(err).Msg("failed to migrate local store")
	}

	kv := kvstore.New(d)
	sessions := session.New(kv)
	draftStore := drafts.New(kv)

	photos, err := photocache.New(cfg.PhotoCacheDir)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to set up photo cache")
	}

	api, err := client.New(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout}, sessions)
	if err != nil {
		zero.Fatal().Err(err).Msg("invalid base URL")
	}

	a := app.New(api, sessions, draftStore, photos, consoleNotifier{}, consoleNavigator{})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err = run(context.Background(), a, os.Args[1], os.Args[2:]); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	user := fs.String("user", "", "target user id (defaults to yourself)")
	name := fs.String("name", "", "target user's first name, for titles")
	post := fs.Int64("post", 0, "post id")
	text := fs.String("text", "", "post text")
	edited := fs.String("edited", "", "edited draft text to submit instead")
	q := fs.String("q", "", "search query")
	file := fs.String("file", "", "path to a photo file")
	mime := fs.String("mime", "image/png", "photo content type")
	fs.Parse(args)

	switch command {
	case "login":
		return a.Login(ctx, *email, *password)
	case "register":
		return a.Register(ctx, *first, *last, *email, *password)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		u, err := a.Account(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %s %s <%s>\n", u.ID, u.FirstName, u.LastName, u.Email)
		return nil
	case "update":
		return a.UpdateAccount(ctx, client.UserUpdate{
			FirstName: *first,
			LastName:  *last,
			Email:     *email,
			Password:  *password,
		})
	case "profile":
		if !a.CheckSession(ctx) {
			return fmt.Errorf("not logged in")
		}
		p, err := a.ViewProfile(ctx, *user, *name)
		if err != nil {
			return err
		}
		fmt.Println(p.Title)
		for _, post := range p.Posts {
			fmt.Printf("#%d %s %s (%s, %d likes)\n  %s\n",
				post.ID, post.Author.FirstName, post.Author.LastName,
				post.Timestamp.Format("15:04 Mon Jan 2 2006"), post.Likes, post.Text)
		}
		return nil
	case "post":
		return withOwner(ctx, a, *user, func(owner string) error {
			return a.CreatePost(ctx, owner, *text)
		})
	case "post-update":
		return withOwner(ctx, a, *user, func(owner string) error {
			return a.UpdatePost(ctx, owner, *post, *text)
		})
	case "post-delete":
		return withOwner(ctx, a, *user, func(owner string) error {
			return a.DeletePost(ctx, owner, *post)
		})
	case "post-view":
		return withOwner(ctx, a, *user, func(owner string) error {
			p, err := a.ViewPost(ctx, owner, *post)
			if err != nil {
				return err
			}
			fmt.Printf("#%d %s %s: %s (%d likes)\n", p.ID, p.Author.FirstName, p.Author.LastName, p.Text, p.Likes)
			return nil
		})
	case "like":
		return withOwner(ctx, a, *user, func(owner string) error {
			return a.LikePost(ctx, owner, *post)
		})
	case "unlike":
		return withOwner(ctx, a, *user, func(owner string) error {
			return a.UnlikePost(ctx, owner, *post)
		})
	case "drafts":
		all, err := a.Drafts(ctx)
		if err != nil {
			return err
		}
		for i, draft := range all {
			fmt.Printf("%d: %s\n", i+1, draft)
		}
		return nil
	case "draft-save":
		return a.SaveDraft(ctx, *text)
	case "draft-delete":
		return a.DeleteDraft(ctx, *text)
	case "draft-post":
		return withOwner(ctx, a, *user, func(owner string) error {
			return a.PromoteDraft(ctx, owner, *text, *edited)
		})
	case "friends":
		var friends []domain.User
		var err error
		if *user == "" {
			friends, err = a.Friends(ctx)
		} else {
			friends, err = a.FriendsOf(ctx, *user)
		}
		if err != nil {
			return err
		}
		for _, friend := range friends {
			fmt.Printf("%d: %s %s\n", friend.ID, friend.FirstName, friend.LastName)
		}
		return nil
	case "search":
		results, err := a.FindFriends(ctx, *q)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("%d: %s %s\n", r.ID, r.GivenName, r.FamilyName)
		}
		return nil
	case "search-friends":
		results, err := a.SearchFriends(ctx, *q)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("%d: %s %s\n", r.ID, r.GivenName, r.FamilyName)
		}
		return nil
	case "friend-request":
		return a.SendFriendRequest(ctx, *user)
	case "friend-requests":
		reqs, err := a.FriendRequests(ctx)
		if err != nil {
			return err
		}
		for _, r := range reqs {
			fmt.Printf("%d: %s %s\n", r.UserID, r.FirstName, r.LastName)
		}
		return nil
	case "friend-accept":
		return a.AcceptFriendRequest(ctx, *user)
	case "friend-reject":
		return a.RejectFriendRequest(ctx, *user)
	case "photo-upload":
		content, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		return a.UploadPhoto(ctx, content, *mime)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// withOwner defaults the wall owner to the logged-in user when -user was not
// given.
func withOwner(ctx context.Context, a *app.App, user string, f func(owner string) error) error {
	if user == "" {
		u, err := a.Account(ctx)
		if err != nil {
			return err
		}
		user = fmt.Sprint(u.ID)
	}
	return f(user)
}

func usage() {
	commands := []string{
		"login", "register", "logout", "whoami", "update",
		"profile", "post", "post-update", "post-delete", "post-view", "like", "unlike",
		"drafts", "draft-save", "draft-delete", "draft-post",
		"friends", "search", "search-friends",
		"friend-request", "friend-requests", "friend-accept", "friend-reject",
		"photo-upload",
	}
	fmt.Fprintf(os.Stderr, "usage: spacebook <command> [flags]\ncommands: %s\n", strings.Join(commands, ", "))
}
