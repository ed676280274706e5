package bots

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"questionnaire-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// botBundle is the transaction bundle of every bot plus the compiled code
// of each bot, needed again for the $deploy call.
type botBundle struct {
	Bundle *fhir_dto.FHIRBundle
	Code   map[string]string
}

func referencePlaceholder(botName string) string {
	return fmt.Sprintf(constvars.FhirBotReferenceToken, botName)
}

func idPlaceholder(botName string) string {
	return fmt.Sprintf(constvars.FhirBotIDToken, botName)
}

// buildBotBundle reads <srcDir>/<name>.ts and <distDir>/<name>.js of each bot.
// Every bot gets two Binary entries, a Bot PUT on its reference placeholder
// and, when it has criteria, a Subscription PUT targeting the bot.
func buildBotBundle(descriptions []requests.BotDescription, srcDir, distDir string) (*botBundle, error) {
	result := &botBundle{
		Bundle: &fhir_dto.FHIRBundle{
			ResourceType: constvars.ResourceBundle,
			Type:         constvars.FhirBundleTypeTransaction,
		},
		Code: make(map[string]string, len(descriptions)),
	}

	for _, description := range descriptions {
		sourceFile := filepath.Join(srcDir, description.Name+".ts")
		source, err := os.ReadFile(sourceFile)
		if err != nil {
			return nil, exceptions.ErrReadBotFile(err, sourceFile)
		}

		distFile := filepath.Join(distDir, description.Name+".js")
		dist, err := os.ReadFile(distFile)
		if err != nil {
			return nil, exceptions.ErrReadBotFile(err, distFile)
		}
		result.Code[description.Name] = string(dist)

		sourceEntry, err := binaryEntry(constvars.MIMETextTypescript, source)
		if err != nil {
			return nil, err
		}
		distEntry, err := binaryEntry(constvars.MIMEApplicationJS, dist)
		if err != nil {
			return nil, err
		}

		botEntry, err := resourceEntry(constvars.MethodPut, referencePlaceholder(description.Name), fhir_dto.Bot{
			ResourceType:   constvars.ResourceBot,
			ID:             idPlaceholder(description.Name),
			Name:           description.Name,
			Description:    description.Description,
			RuntimeVersion: constvars.FhirBotRuntimeVersion,
			SourceCode: &fhir_dto.Attachment{
				ContentType: constvars.MIMETextTypescript,
				Url:         sourceEntry.FullUrl,
			},
			ExecutableCode: &fhir_dto.Attachment{
				ContentType: constvars.MIMEApplicationJS,
				Url:         distEntry.FullUrl,
			},
		})
		if err != nil {
			return nil, err
		}

		result.Bundle.Entry = append(result.Bundle.Entry, sourceEntry, distEntry, botEntry)

		if description.Criteria == "" {
			continue
		}

		var extensions []fhir_dto.Extension
		if err := mapstructure.Decode(description.Extension, &extensions); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}

		subscriptionEntry, err := resourceEntry(
			constvars.MethodPut,
			fmt.Sprintf(constvars.FhirSubscriptionSearchFormat, referencePlaceholder(description.Name)),
			fhir_dto.Subscription{
				ResourceType: constvars.ResourceSubscription,
				Status:       constvars.FhirSubscriptionActive,
				Reason:       fmt.Sprintf(constvars.FhirSubscriptionReasonFormat, description.Name),
				Criteria:     description.Criteria,
				Extension:    extensions,
				Channel: fhir_dto.SubscriptionChannel{
					Type:     constvars.FhirSubscriptionRestHook,
					Endpoint: referencePlaceholder(description.Name),
					Payload:  constvars.MIMEApplicationFHIRJSON,
				},
			},
		)
		if err != nil {
			return nil, err
		}
		result.Bundle.Entry = append(result.Bundle.Entry, subscriptionEntry)
	}

	return result, nil
}

func binaryEntry(contentType string, content []byte) (fhir_dto.BundleEntry, error) {
	entry, err := resourceEntry(constvars.MethodPost, constvars.ResourceBinary, fhir_dto.Binary{
		ResourceType: constvars.ResourceBinary,
		ContentType:  contentType,
		Data:         base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return fhir_dto.BundleEntry{}, err
	}
	entry.FullUrl = utils.GenerateUrnUUID()
	return entry, nil
}

func resourceEntry(method, url string, resource any) (fhir_dto.BundleEntry, error) {
	raw, err := json.Marshal(resource)
	if err != nil {
		return fhir_dto.BundleEntry{}, exceptions.ErrCannotMarshalJSON(err)
	}
	return fhir_dto.BundleEntry{
		Resource: raw,
		Request: &fhir_dto.BundleEntryRequest{
			Method: method,
			Url:    url,
		},
	}, nil
}
