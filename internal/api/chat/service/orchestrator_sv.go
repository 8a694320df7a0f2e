package chatService

import (
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/chat"
	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/classifier"
	contextPkg "metro-chatbot/pkg/context"
)

const (
	apologyMessage = "I apologize, but I encountered an error processing your question. Could you please rephrase?"

	historyWindow    = 5
	knowledgeTopK    = 3
	knowledgeExcerpt = 300
)

var problemKeywords = []string{
	"problem", "issue", "fault", "not working", "broken", "repair", "fix",
	"diagnose", "troubleshoot", "error", "failing", "stopped working",
}

type fetchedData struct {
	Products    []entity.Product
	Technicians []entity.Technician
	Salesmen    []entity.Salesman
	Employees   []entity.Employee
}

func (f fetchedData) Empty() bool {
	return len(f.Products) == 0 && len(f.Technicians) == 0 &&
		len(f.Salesmen) == 0 && len(f.Employees) == 0
}

// answerQuestion runs the classify, fetch, prompt, respond pipeline and
// fills the response in place. It never fails the request: when the LLM
// is unreachable the user gets an apology and retry steps.
func (s *chatService) answerQuestion(ctx context.Context, req chat.ChatRequest, sess *entity.ChatSession, resp *chat.ChatResponse) {
	requestID := contextPkg.GetRequestID(ctx)

	category, confidence := s.classifier.Classify(req.UserMessage)
	policy := classifier.PolicyFor(category)

	resp.Debug.Category = string(category)
	resp.Debug.Confidence = make(map[string]float64, len(confidence))
	for c, p := range confidence {
		resp.Debug.Confidence[string(c)] = p
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"category":   category,
		"confidence": confidence[category],
	}).Info("Message classified")

	fetched := s.fetchForPolicy(ctx, req.UserMessage, policy)

	knowledgeContext := s.retrieveKnowledge(ctx, req.UserMessage)

	profile := req.UserProfile
	if profile == nil && sess.UserName != "" {
		profile = &chat.UserProfile{Name: sess.UserName, Email: sess.UserEmail}
	}

	history := s.mergeHistory(ctx, sess.ID, req.ConversationHistory)

	prompt := buildAnswerPrompt(req.UserMessage, fetched, policy.Verbosity, knowledgeContext)

	botMessage, err := s.llm.GenerateReply(ctx, buildSystemPrompt(profile), history, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("LLM reply generation failed")
		resp.BotMessage = apologyMessage
		resp.Recommends = chat.EmptyRecommends()
		resp.NextStep = []string{"Try again", "Start over"}
		return
	}

	resp.BotMessage = botMessage
	resp.Recommends = buildRecommends(fetched, category, policy.MaxRecommendations)
	resp.NextStep = buildNextSteps(resp.Recommends)
}

// fetchForPolicy runs every lookup the policy names in parallel. A
// failed lookup logs and contributes nothing; the others still land.
func (s *chatService) fetchForPolicy(ctx context.Context, message string, policy classifier.Policy) fetchedData {
	requestID := contextPkg.GetRequestID(ctx)

	var fetched fetchedData
	if !policy.FetchData {
		return fetched
	}

	hint := productCategoryHint(message)

	var wg sync.WaitGroup
	for _, lookup := range policy.Lookups {
		wg.Add(1)
		switch lookup {
		case classifier.LookupProducts:
			go func() {
				defer wg.Done()
				products, err := s.catalog.SearchProducts(ctx, message, hint)
				if err != nil {
					s.logFetchFailure(requestID, string(classifier.LookupProducts), err)
					return
				}
				fetched.Products = products
			}()
		case classifier.LookupSalesmen:
			go func() {
				defer wg.Done()
				salesmen, err := s.catalog.SearchSalesmen(ctx, hint)
				if err != nil {
					s.logFetchFailure(requestID, string(classifier.LookupSalesmen), err)
					return
				}
				fetched.Salesmen = salesmen
			}()
		case classifier.LookupEmployees:
			go func() {
				defer wg.Done()
				employees, err := s.catalog.SearchEmployees(ctx, message, "")
				if err != nil {
					s.logFetchFailure(requestID, string(classifier.LookupEmployees), err)
					return
				}
				fetched.Employees = employees
			}()
		default:
			wg.Done()
		}
	}

	// Repair talk pulls technicians regardless of the category lookups.
	if hasProblemKeyword(message) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			technicians, err := s.catalog.SearchTechnicians(ctx, hint)
			if err != nil {
				s.logFetchFailure(requestID, "search_technicians", err)
				return
			}
			fetched.Technicians = technicians
		}()
	}

	wg.Wait()

	return fetched
}

func (s *chatService) logFetchFailure(requestID, lookup string, err error) {
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"lookup":     lookup,
		"error":      err.Error(),
	}).Warn("Lookup failed, continuing without its results")
}

func (s *chatService) retrieveKnowledge(ctx context.Context, query string) []string {
	if s.knowledge == nil || !s.knowledge.Enabled() {
		return nil
	}

	chunks, err := s.knowledge.Retrieve(ctx, query, knowledgeTopK)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Knowledge retrieval failed, answering without it")
		return nil
	}

	excerpts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		content := chunk.Content
		if len(content) > knowledgeExcerpt {
			content = content[:knowledgeExcerpt]
		}
		excerpts = append(excerpts, content)
	}
	return excerpts
}

// mergeHistory prefers the caller-supplied transcript and falls back to
// the short-term cache, keeping only the most recent window.
func (s *chatService) mergeHistory(ctx context.Context, sessionID string, supplied []entity.ChatTurn) []entity.ChatTurn {
	history := supplied
	if len(history) == 0 {
		cached, err := s.cache.GetHistory(ctx, sessionID)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Failed to load cached history")
		} else {
			history = cached
		}
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	return history
}

func productCategoryHint(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "solar"):
		return "solar"
	case strings.Contains(lower, "generator"):
		return "generator"
	case strings.Contains(lower, "inverter"):
		return "inverter"
	case strings.Contains(lower, "electric"):
		return "electrical"
	default:
		return ""
	}
}

func hasProblemKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range problemKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// buildRecommends converts fetched rows into response cards and applies
// the per-category cap. A zero cap empties every list.
func buildRecommends(fetched fetchedData, category classifier.Category, maxRecommendations int) chat.Recommends {
	recommends := chat.EmptyRecommends()
	recommends.ExtraInfo = "Category: " + string(category)

	if maxRecommendations <= 0 {
		return recommends
	}

	for _, p := range capProducts(fetched.Products, maxRecommendations) {
		recommends.Products = append(recommends.Products, catalog.ProductCard{
			Name:           p.Name,
			Category:       p.Category,
			Description:    p.Description,
			Specifications: p.Specifications,
			Price:          p.Price,
		})
	}
	for _, t := range capTechnicians(fetched.Technicians, maxRecommendations) {
		recommends.Technicians = append(recommends.Technicians, catalog.TechnicianCard{
			Name:            t.Name,
			Speciality:      t.Speciality,
			Contact:         t.Contact,
			Email:           t.Email,
			ExperienceYears: strconv.Itoa(t.ExperienceYears),
		})
	}
	for _, sm := range capSalesmen(fetched.Salesmen, maxRecommendations) {
		recommends.Salesman = append(recommends.Salesman, catalog.SalesmanCard{
			Name:       sm.Name,
			Speciality: sm.Speciality,
			Contact:    sm.Contact,
			Email:      sm.Email,
		})
	}
	for _, e := range capEmployees(fetched.Employees, maxRecommendations) {
		recommends.Employees = append(recommends.Employees, catalog.EmployeeCard{
			Name:       e.Name,
			Position:   e.Position,
			Department: e.Department,
			Contact:    e.Contact,
			Email:      e.Email,
		})
	}

	return recommends
}

func capProducts(items []entity.Product, max int) []entity.Product {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func capTechnicians(items []entity.Technician, max int) []entity.Technician {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func capSalesmen(items []entity.Salesman, max int) []entity.Salesman {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func capEmployees(items []entity.Employee, max int) []entity.Employee {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func buildNextSteps(recommends chat.Recommends) []string {
	steps := []string{"Ask another question"}
	if len(recommends.Products) > 0 {
		steps = append(steps, "View more products")
	}
	if len(recommends.Technicians) > 0 {
		steps = append(steps, "Contact technician")
	}
	if len(recommends.Salesman) > 0 {
		steps = append(steps, "Contact sales")
	}
	if len(recommends.Employees) > 0 {
		steps = append(steps, "View employee details")
	}
	steps = append(steps, "Start over")
	return steps
}
