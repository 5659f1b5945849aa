package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleStudent Role = "Student"
	RoleTutor   Role = "Tutor"
	RoleAdmin   Role = "Admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusApproved SessionStatus = "approved"
	SessionStatusRejected SessionStatus = "rejected"
)

type User struct {
	Id    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

type Session struct {
	Id                    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title                 string             `bson:"session_title" json:"session_title"`
	Description           string             `bson:"description" json:"description"`
	TutorName             string             `bson:"tutor_name" json:"tutor_name"`
	TutorEmail            string             `bson:"tutor_email" json:"tutor_email"`
	RegistrationStartDate string             `bson:"registration_start_date" json:"registration_start_date"`
	RegistrationEndDate   string             `bson:"registration_end_date" json:"registration_end_date"`
	ClassStartTime        string             `bson:"class_start_time" json:"class_start_time"`
	ClassEndTime          string             `bson:"class_end_time" json:"class_end_time"`
	Duration              string             `bson:"session_duration" json:"session_duration"`
	RegistrationFee       float64            `bson:"registration_fee" json:"registration_fee"`
	Category              string             `bson:"category" json:"category"`
	Status                SessionStatus      `bson:"status" json:"status"`
	Reason                string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Feedback              string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

type BookedSession struct {
	Id              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	SessionId       string             `bson:"session_id" json:"session_id"`
	SessionTitle    string             `bson:"session_title" json:"session_title"`
	TutorEmail      string             `bson:"tutor_email" json:"tutor_email"`
	RegistrationFee float64            `bson:"registration_fee" json:"registration_fee"`
}

type Note struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}

type Material struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Link       string             `bson:"link" json:"link"`
	Img        string             `bson:"img" json:"img"`
	TutorEmail string             `bson:"tutor_email" json:"tutor_email"`
}

type Review struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionId    string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	StudentName  string             `bson:"student_name" json:"student_name"`
	StudentImage string             `bson:"student_image,omitempty" json:"student_image,omitempty"`
	Rating       float64            `bson:"rating" json:"rating"`
	Comment      string             `bson:"comment" json:"comment"`
}
