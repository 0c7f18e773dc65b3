package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/nsara/website/internal/config"
	"github.com/nsara/website/internal/model"
)

// sesAPI is the slice of the SES v2 client used here.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier sends enquiry notifications through AWS SES v2.
type SESNotifier struct {
	client   sesAPI
	to       string
	from     string
	renderer *Renderer
	readyErr error
}

// Ensure SESNotifier implements Notifier at compile time.
var _ Notifier = (*SESNotifier)(nil)

// NewSESNotifier builds an SES notifier from cfg. It never fails: a missing
// address or an unusable AWS configuration is recorded and reported by Ready,
// so that every enquiry is refused instead of silently dropped.
func NewSESNotifier(ctx context.Context, cfg config.MailConfig) *SESNotifier {
	n := &SESNotifier{to: cfg.To, from: cfg.From, renderer: NewRenderer()}

	if missing := cfg.Missing(); len(missing) > 0 {
		n.readyErr = fmt.Errorf("%w: %s not set", ErrNotConfigured, strings.Join(missing, ", "))
		return n
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		n.readyErr = fmt.Errorf("%w: loading AWS config: %v", ErrNotConfigured, err)
		return n
	}
	n.client = sesv2.NewFromConfig(awsCfg)
	return n
}

func newSESNotifier(client sesAPI, to, from string) *SESNotifier {
	return &SESNotifier{client: client, to: to, from: from, renderer: NewRenderer()}
}

// Ready reports whether notifications can be sent.
func (n *SESNotifier) Ready() error {
	if n.readyErr != nil {
		return n.readyErr
	}
	if n.client == nil || n.to == "" || n.from == "" {
		return ErrNotConfigured
	}
	return nil
}

// Notify emails e to the staff recipient. Replies go to the enquirer.
func (n *SESNotifier) Notify(ctx context.Context, e *model.Enquiry) error {
	if err := n.Ready(); err != nil {
		return err
	}

	html, err := n.renderer.HTML(e)
	if err != nil {
		return fmt.Errorf("render html body: %w", err)
	}
	text, err := n.renderer.Text(e)
	if err != nil {
		return fmt.Errorf("render text body: %w", err)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{n.to}},
		ReplyToAddresses: []string{e.Email},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(n.renderer.Subject(e)), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("category"), Value: aws.String("enquiry")},
		},
	}

	out, err := n.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	slog.Info("enquiry notification sent",
		"enquiry_id", e.ID,
		"message_id", aws.ToString(out.MessageId),
		"reply_to_email", e.Email,
	)
	return nil
}
