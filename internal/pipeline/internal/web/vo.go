// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/service"
)

type ApplicationIdReq struct {
	ApplicationId int64 `json:"applicationId"`
}

type InterviewIdReq struct {
	InterviewId int64 `json:"interviewId"`
}

type SetStatusReq struct {
	ApplicationId int64  `json:"applicationId"`
	Status        string `json:"status"`
}

type ListByJobReq struct {
	JobId  int64 `json:"jobId"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Candidate struct {
	Id       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Source   string `json:"source"`
}

type Resume struct {
	Id           int64  `json:"id"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

type Application struct {
	Id                  int64     `json:"id"`
	JobId               int64     `json:"jobId"`
	Candidate           Candidate `json:"candidate"`
	StageId             int64     `json:"stageId"`
	Status              string    `json:"status"`
	AppliedAt           int64     `json:"appliedAt"`
	LastStatusChangedAt int64     `json:"lastStatusChangedAt"`
	ContactEmail        string    `json:"contactEmail"`
	ContactPhone        string    `json:"contactPhone"`
	Resume              Resume    `json:"resume"`
	Introduction        string    `json:"introduction,omitempty"`
	// AiScore 没有评分时为 nil
	AiScore *int `json:"aiScore,omitempty"`
}

type AiScore struct {
	Score         int      `json:"score"`
	Explanation   string   `json:"explanation"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Model         string   `json:"model"`
	Ctime         int64    `json:"ctime"`
}

type Job struct {
	Id    int64  `json:"id"`
	Title string `json:"title"`
}

type ApplicationDetail struct {
	Application Application `json:"application"`
	Job         Job         `json:"job"`
	AiScore     *AiScore    `json:"aiScore,omitempty"`
	Interview   *Interview  `json:"interview,omitempty"`
}

type ScheduleReq struct {
	ApplicationId int64  `json:"applicationId"`
	InterviewerId int64  `json:"interviewerId"`
	Title         string `json:"title"`
	StartAt       int64  `json:"startAt"`
	EndAt         int64  `json:"endAt"`
	Location      string `json:"location"`
	MeetingLink   string `json:"meetingLink"`
}

type Interview struct {
	Id            int64  `json:"id"`
	ApplicationId int64  `json:"applicationId"`
	InterviewerId int64  `json:"interviewerId"`
	Title         string `json:"title"`
	StartAt       int64  `json:"startAt"`
	EndAt         int64  `json:"endAt"`
	Location      string `json:"location"`
	MeetingLink   string `json:"meetingLink"`
	Status        string `json:"status"`
	// State 只在面试官日程里返回
	State string `json:"state,omitempty"`
}

type EvaluationReq struct {
	InterviewId int64          `json:"interviewId"`
	Score       int            `json:"score"`
	Comment     string         `json:"comment"`
	Result      string         `json:"result"`
	Details     map[string]any `json:"details"`
}

type Evaluation struct {
	Id            int64          `json:"id"`
	InterviewId   int64          `json:"interviewId"`
	InterviewerId int64          `json:"interviewerId"`
	Score         int            `json:"score"`
	Comment       string         `json:"comment"`
	Result        string         `json:"result"`
	Details       map[string]any `json:"details"`
	Ctime         int64          `json:"ctime"`
}

type SendOfferReq struct {
	ApplicationId int64    `json:"applicationId"`
	Salary        string   `json:"salary"`
	EntryTime     int64    `json:"entryTime"`
	CcInterviewer bool     `json:"ccInterviewer"`
	Cc            []string `json:"cc"`
}

func newApplication(app domain.Application) Application {
	return Application{
		Id:    app.Id,
		JobId: app.JobId,
		Candidate: Candidate{
			Id:       app.Candidate.Id,
			Email:    app.Candidate.Email,
			FullName: app.Candidate.FullName,
			Phone:    app.Candidate.Phone,
			Source:   app.Candidate.Source,
		},
		StageId:             app.StageId,
		Status:              app.Status.String(),
		AppliedAt:           app.AppliedAt,
		LastStatusChangedAt: app.LastStatusChangedAt,
		ContactEmail:        app.ContactEmail,
		ContactPhone:        app.ContactPhone,
		Resume: Resume{
			Id:           app.Resume.Id,
			OriginalName: app.Resume.OriginalName,
			MimeType:     app.Resume.MimeType,
			Size:         app.Resume.Size,
		},
		Introduction: app.Introduction,
	}
}

func newInterview(iv domain.Interview) Interview {
	return Interview{
		Id:            iv.Id,
		ApplicationId: iv.ApplicationId,
		InterviewerId: iv.InterviewerId,
		Title:         iv.Title,
		StartAt:       iv.StartAt,
		EndAt:         iv.EndAt,
		Location:      iv.Location,
		MeetingLink:   iv.MeetingLink,
		Status:        iv.Status.String(),
	}
}

func newApplicationDetail(d service.ApplicationDetail) ApplicationDetail {
	res := ApplicationDetail{
		Application: newApplication(d.Application),
		Job:         Job{Id: d.Job.Id, Title: d.Job.Title},
	}
	if d.AiScore.Id > 0 {
		res.AiScore = &AiScore{
			Score:         d.AiScore.Score,
			Explanation:   d.AiScore.Explanation,
			MatchedSkills: d.AiScore.MatchedSkills,
			MissingSkills: d.AiScore.MissingSkills,
			Model:         d.AiScore.Model,
			Ctime:         d.AiScore.Ctime,
		}
		res.Application.AiScore = &res.AiScore.Score
	}
	if d.Interview.Id > 0 {
		iv := newInterview(d.Interview)
		res.Interview = &iv
	}
	return res
}

type RejectionDraftReq struct {
	ApplicationId int64    `json:"applicationId"`
	Reasons       []string `json:"reasons"`
	Note          string   `json:"note"`
}

type SendReviewedReq struct {
	ApplicationId int64  `json:"applicationId"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

type JudgeAnswerReq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AnswerJudgement struct {
	Score      int    `json:"score"`
	Assessment string `json:"assessment"`
}
